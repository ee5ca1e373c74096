package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"
)

// RunWithGolden executes a scenario, fails the test on expect violations,
// and compares the transcript against testdata/{scenario.Name}.golden.
//
// To regenerate golden files:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, scenario *Scenario) error {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return err
	}

	for _, msg := range result.Errors {
		t.Errorf("expect violation: %s", msg)
	}

	g := goldie.New(t)
	g.Assert(t, scenario.Name, []byte(result.Transcript))

	return nil
}
