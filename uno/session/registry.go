package session

import (
	"sort"

	"github.com/awesome-cap/hashmap"
)

// sessions holds every session currently being played, keyed by ID.
var sessions = hashmap.New()

func Register(s *Session) {
	sessions.Set(s.ID, s)
}

func Unregister(id string) {
	sessions.Del(id)
}

func Lookup(id string) *Session {
	if v, ok := sessions.Get(id); ok {
		return v.(*Session)
	}
	return nil
}

// Running lists registered sessions, oldest first.
func Running() []*Session {
	list := make([]*Session, 0)
	sessions.Foreach(func(e *hashmap.Entry) {
		list = append(list, e.Value().(*Session))
	})
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.Before(list[j].CreatedAt)
	})
	return list
}
