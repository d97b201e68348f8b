package proc

import (
	"fmt"
	"os/user"
	"strconv"

	lru "github.com/hashicorp/golang-lru"
)

const userCacheSize = 64

type uidResult struct {
	uid uint32
	err error
}

// UserResolver looks up uids by login name. Answers, failures included,
// are cached for the lifetime of the resolver.
type UserResolver struct {
	cache  *lru.Cache
	lookup func(name string) (*user.User, error)
}

func NewUserResolver() *UserResolver {
	cache, _ := lru.New(userCacheSize)
	return &UserResolver{cache: cache, lookup: user.Lookup}
}

// UID returns the uid of the account called name.
func (r *UserResolver) UID(name string) (uint32, error) {
	if v, ok := r.cache.Get(name); ok {
		res := v.(uidResult)
		return res.uid, res.err
	}
	res := r.resolve(name)
	r.cache.Add(name, res)
	return res.uid, res.err
}

func (r *UserResolver) resolve(name string) uidResult {
	u, err := r.lookup(name)
	if err != nil {
		return uidResult{err: err}
	}
	uid, err := strconv.ParseUint(u.Uid, 10, 32)
	if err != nil {
		return uidResult{err: fmt.Errorf("user %s: bad uid %q", name, u.Uid)}
	}
	return uidResult{uid: uint32(uid)}
}
