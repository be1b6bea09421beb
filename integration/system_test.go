//go:build integration

package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"os"
	"testing"
	"time"
)

var baseURL = getenv("E2E_BASE_URL", "http://localhost:8080")

type species struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

type count struct {
	AccessCount int64 `json:"access_count"`
}

func TestSystem_E2E_Catalog(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	waitReady(t, ctx, baseURL+"/readyz")

	var all []species
	getJSON(t, baseURL+"/monkeys", &all, http.StatusOK)
	if len(all) == 0 {
		t.Fatalf("expected non-empty catalog")
	}

	var one species
	getJSON(t, baseURL+"/monkeys/"+url.PathEscape(all[0].Name), &one, http.StatusOK)
	if one.Name != all[0].Name {
		t.Fatalf("lookup got=%q want=%q", one.Name, all[0].Name)
	}
	getJSON(t, baseURL+"/monkeys/"+url.PathEscape("no such monkey"), nil, http.StatusNotFound)

	var before, after count
	getJSON(t, baseURL+"/monkeys/random/count", &before, http.StatusOK)
	getJSON(t, baseURL+"/monkeys/random", &one, http.StatusOK)
	getJSON(t, baseURL+"/monkeys/random/count", &after, http.StatusOK)
	if after.AccessCount < before.AccessCount+1 {
		t.Fatalf("access_count before=%d after=%d", before.AccessCount, after.AccessCount)
	}

	if os.Getenv("E2E_RESTART") == "1" {
		restartContainer(t, ctx)
		waitReady(t, ctx, baseURL+"/readyz")

		var fresh count
		getJSON(t, baseURL+"/monkeys/random/count", &fresh, http.StatusOK)
		if fresh.AccessCount != 0 {
			t.Fatalf("access_count after restart=%d want=0", fresh.AccessCount)
		}
	}
}

func waitReady(t *testing.T, ctx context.Context, url string) {
	t.Helper()
	client := &http.Client{Timeout: 2 * time.Second}

	deadline := time.Now().Add(60 * time.Second)
	for time.Now().Before(deadline) {
		req, _ := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		resp, err := client.Do(req)
		if err == nil && resp != nil && resp.StatusCode == http.StatusOK {
			_ = resp.Body.Close()
			return
		}
		if resp != nil {
			_ = resp.Body.Close()
		}
		time.Sleep(500 * time.Millisecond)
	}
	t.Fatalf("service not ready: %s", url)
}

func getJSON(t *testing.T, url string, out any, want int) {
	t.Helper()

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != want {
		t.Fatalf("GET %s: status=%d want=%d", url, resp.StatusCode, want)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
