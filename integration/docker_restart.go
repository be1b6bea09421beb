//go:build integration

package integration

import (
	"context"
	"os/exec"
	"testing"
)

// restartContainer restarts the compose service named by E2E_SERVICE (default monkeyapp).
func restartContainer(t *testing.T, ctx context.Context) {
	t.Helper()

	svc := getenv("E2E_SERVICE", "monkeyapp")
	out, err := exec.CommandContext(ctx, "docker", "compose", "restart", svc).CombinedOutput()
	if err != nil {
		t.Fatalf("docker compose restart %s failed: %v\n%s", svc, err, string(out))
	}
}
