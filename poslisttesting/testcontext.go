package poslisttesting

import (
	"math/rand/v2"
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/google/uuid"
)

type TestContext struct {
	Log  logger.Logger
	Rand *rand.Rand
	T    *testing.T
}

type TestConfig struct {
	// Seed fixes the operation sequence so that failures reproduce from run
	// to run. Zero selects a fixed default.
	Seed            uint64
	TestLabelPrefix string // can be "", a random label is generated
	LogLevel        string // can be "", defaults to INFO
}

func NewTestContext(t *testing.T, cfg TestConfig) TestContext {
	c := TestContext{
		T: t,
	}

	level := cfg.LogLevel
	if level == "" {
		level = "INFO"
	}
	logger.New(level)

	label := cfg.TestLabelPrefix
	if label == "" {
		label = "poslist-" + uuid.NewString()[:8]
	}
	c.Log = logger.Sugar.WithServiceName(label)

	seed := cfg.Seed
	if seed == 0 {
		seed = 1
	}
	c.Rand = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	return c
}

func (c *TestContext) GetLog() logger.Logger { return c.Log }

// Intn returns a uniformly chosen int in [0, n).
func (c *TestContext) Intn(n int) int {
	return c.Rand.IntN(n)
}

// Coin returns true half of the time.
func (c *TestContext) Coin() bool {
	return c.Rand.IntN(2) == 0
}
