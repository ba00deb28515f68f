// Package pincode resolves Indian postal codes to the localities they serve.
//
// The enrollment form asks members to pick their city from the places
// registered for their pincode. Directory is the lookup contract; the
// package ships several implementations that are meant to be stacked:
//
//	var dir pincode.Directory = pincode.NewClient()          // Zippopotam over HTTP
//	dir = pincode.NewRedisCache(dir, rdb, 7*24*time.Hour)    // shared cache
//	dir = pincode.NewCached(dir, 4096, 24*time.Hour)         // per-process LRU
//	dir = pincode.Chain(static, dir)                         // offline file first
//
// Every implementation normalizes the pincode first and returns
// ErrInvalidPincode for anything but six digits not starting with zero.
// Place names are title-cased and de-duplicated.
package pincode
