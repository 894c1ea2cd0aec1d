package middleware

import "github.com/aretw0/morse/pkg/ports"

// Middleware allows wrapping a TranslationCache to add behavior.
type Middleware func(ports.TranslationCache) ports.TranslationCache

// Chain applies middlewares so that the first one is the outermost.
func Chain(c ports.TranslationCache, mws ...Middleware) ports.TranslationCache {
	for i := len(mws) - 1; i >= 0; i-- {
		c = mws[i](c)
	}
	return c
}
