package config

import (
	"fmt"
	"strings"
)

type Requirement struct {
	Env string
	Set bool
}

func NonEmpty(env, value string) Requirement {
	return Requirement{Env: env, Set: value != ""}
}

func NonEmptyBytes(env string, value []byte) Requirement {
	return Requirement{Env: env, Set: len(value) > 0}
}

// Require reports every unset env in one error.
func Require(reqs ...Requirement) error {
	var missing []string
	for _, r := range reqs {
		if !r.Set {
			missing = append(missing, r.Env)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required env %s", strings.Join(missing, ", "))
	}
	return nil
}
