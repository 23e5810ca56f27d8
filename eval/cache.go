package eval

import (
	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
)

type constantKey struct {
	global bool
	n      int
	mu, nu float64
}

// ConstantCache memoises the LRE and GRE normalisation constants, which only
// depend on list length and parameters. It is safe for concurrent use.
type ConstantCache struct {
	cache *lru.Cache
}

// NewConstantCache creates a cache holding at most size constants.
func NewConstantCache(size int) (*ConstantCache, error) {
	c, err := lru.New(size)
	if err != nil {
		return nil, errors.Wrap(err, "could not create normalisation constant cache")
	}
	return &ConstantCache{cache: c}, nil
}

func (c *ConstantCache) get(key constantKey, compute constantFunc) float64 {
	if v, ok := c.cache.Get(key); ok {
		return v.(float64)
	}
	v := compute(key.n, key.mu, key.nu)
	c.cache.Add(key, v)
	return v
}

// LocalRankError returns C_LRE for (n, mu, nu).
func (c *ConstantCache) LocalRankError(n int, mu, nu float64) float64 {
	return c.get(constantKey{n: n, mu: mu, nu: nu}, LocalRankErrorConstant)
}

// GlobalRankError returns C_GRE for (n, mu, nu).
func (c *ConstantCache) GlobalRankError(n int, mu, nu float64) float64 {
	return c.get(constantKey{global: true, n: n, mu: mu, nu: nu}, GlobalRankErrorConstant)
}

// Len is the number of cached constants.
func (c *ConstantCache) Len() int {
	return c.cache.Len()
}
