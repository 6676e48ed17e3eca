package infra

import (
	_ "embed"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	stringadapter "github.com/casbin/casbin/v2/persist/string-adapter"
)

//go:embed model.conf
var defaultModel string

//go:embed policy.csv
var defaultPolicy string

// NewEnforcer builds an enforcer from the given files. Empty paths fall back
// to the model and role policy compiled into the binary.
func NewEnforcer(modelPath, policyPath string) (*casbin.Enforcer, error) {
	if modelPath != "" && policyPath != "" {
		return casbin.NewEnforcer(modelPath, policyPath)
	}
	return NewDefaultEnforcer()
}

func NewDefaultEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(defaultModel)
	if err != nil {
		return nil, err
	}
	return casbin.NewEnforcer(m, stringadapter.NewAdapter(defaultPolicy))
}
