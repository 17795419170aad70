package common

import (
	"fmt"
	"runtime"

	"github.com/kelseyhightower/envconfig"
)

// Env holds defaults read from PERIODIC_* environment variables. Command
// line flags override them.
type Env struct {
	// Input is the file holding the comma separated ranges.
	// Env: PERIODIC_INPUT
	Input string `envconfig:"INPUT"`

	// Threads is the number of workers used to aggregate ranges. Zero picks
	// half the CPUs.
	// Env: PERIODIC_THREADS (default: 0)
	Threads int `envconfig:"THREADS" default:"0"`

	// Verbose turns on progress logging.
	// Env: PERIODIC_VERBOSE (default: false)
	Verbose bool `envconfig:"VERBOSE" default:"false"`
}

// LoadEnv reads the PERIODIC_* environment.
func LoadEnv() (Env, error) {
	var env Env
	if err := envconfig.Process("PERIODIC", &env); err != nil {
		return Env{}, fmt.Errorf("process env: %w", err)
	}
	if env.Threads < 0 {
		return Env{}, fmt.Errorf("PERIODIC_THREADS must not be negative, got %d", env.Threads)
	}
	return env, nil
}

// WorkerCount resolves a requested thread count, treating zero as half the
// available CPUs and never returning less than one.
func WorkerCount(threads int) int {
	if threads <= 0 {
		threads = runtime.NumCPU() / 2
	}
	return max(threads, 1)
}
