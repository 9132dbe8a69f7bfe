package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	ViewModel  = donburi.NewTag().SetName("ViewModel")
	MainCamera = donburi.NewTag().SetName("MainCamera")
	Wall       = donburi.NewTag().SetName("Wall")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Explosion  = donburi.NewTag().SetName("Explosion")
)

// Resolv tags for physics collision
const (
	ResolvPlayer    = "Player"
	ResolvEnemy     = "Enemy"
	ResolvExplosion = "Explosion"
	ResolvWall      = "solid"
)
