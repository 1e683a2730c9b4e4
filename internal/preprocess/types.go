package preprocess

import (
	"github.com/packagewjx/hepatitis-classifier/internal/dataset"
)

// Step 预处理步骤接口
type Step interface {
	Apply(table *dataset.Table) error
}

type chain struct {
	steps []Step
}

func (c *chain) Apply(table *dataset.Table) error {
	for _, step := range c.steps {
		if err := step.Apply(table); err != nil {
			return err
		}
	}
	return nil
}

// Chain 将多个步骤按顺序组合为一个步骤，任一步骤出错则立即中止
func Chain(steps ...Step) Step {
	return &chain{steps: steps}
}
