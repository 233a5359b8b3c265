// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package s2sample

import (
	"fmt"
	"strings"
)

// Method selects a sampling distribution.
type Method uint8

const (
	// Uniform samples uniformly with respect to surface area.
	Uniform Method = iota
	// CosineWeighted samples with the two-branch cosine-weighted mapping.
	CosineWeighted
)

func (m Method) String() string {
	switch m {
	case Uniform:
		return "uniform"
	case CosineWeighted:
		return "cosine"
	}
	return fmt.Sprintf("Method(%d)", uint8(m))
}

// Sampler returns the per-pair sampling function of the method.
// It returns an error if the method is unknown.
func (m Method) Sampler() (Sampler, error) {
	switch m {
	case Uniform:
		return UniformSphere, nil
	case CosineWeighted:
		return CosineWeightedSphere, nil
	}
	return nil, fmt.Errorf("s2sample: unknown method %v", m)
}

// ParseMethod parses the name of a method as returned by Method.String.
// "cosine-weighted" is accepted as an alias of "cosine".
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "uniform":
		return Uniform, nil
	case "cosine", "cosine-weighted":
		return CosineWeighted, nil
	}
	return 0, fmt.Errorf("s2sample: unknown method %q", s)
}
