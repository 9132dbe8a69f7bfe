package components

import (
	"github.com/automoto/boomstick/tags"
	"github.com/yohamta/donburi"
)

// Group is a collision group bit.
type Group uint32

const (
	GroupPlayer Group = 1 << iota
	GroupEnemy
	GroupExplosion
	GroupWall
)

var groupTags = []struct {
	group Group
	tag   string
}{
	{GroupPlayer, tags.ResolvPlayer},
	{GroupEnemy, tags.ResolvEnemy},
	{GroupExplosion, tags.ResolvExplosion},
	{GroupWall, tags.ResolvWall},
}

// ResolvTags returns the resolv tags for every group set in g.
func (g Group) ResolvTags() []string {
	var out []string
	for _, gt := range groupTags {
		if g&gt.group != 0 {
			out = append(out, gt.tag)
		}
	}
	return out
}

// CollisionGroupsData is authored once at spawn. Memberships is what the
// entity is; Filters is what it interacts with.
type CollisionGroupsData struct {
	Memberships Group
	Filters     Group
}

// DamageSources are the filtered groups that count as combat hits. Level
// geometry blocks movement but never deals damage.
func (c CollisionGroupsData) DamageSources() Group {
	return c.Filters &^ GroupWall
}

var CollisionGroups = donburi.NewComponentType[CollisionGroupsData]()
