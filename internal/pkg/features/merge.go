package features

import "github.com/ManuelReschke/featurehub/internal/pkg/billing"

// applyIfPresent copies *src into *dst when the source field was present.
func applyIfPresent[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func applyQuota(dst *LimitationView, src *billing.Quota) {
	if src == nil {
		return
	}
	dst.Size = src.Size
	dst.Limit = src.Limit
}
