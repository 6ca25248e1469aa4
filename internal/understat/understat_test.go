package understat

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

// fakeFetcher serves canned markup per URL.
type fakeFetcher struct {
	pages map[string]string
	calls []string
}

func (f *fakeFetcher) Fetch(ctx context.Context, url string) (string, error) {
	f.calls = append(f.calls, url)
	page, ok := f.pages[url]
	if !ok {
		return "", fmt.Errorf("could not retrieve page %s", url)
	}
	return page, nil
}

const leagueLegacy = `<html><script>
var matchesData = JSON.parse('[{"id":"101","round":"1","datetime":"2024-08-17"},{"id":"102","round":"2","datetime":"2024-08-24"}]');
</script></html>`

const matchLegacy = `<html><script>
var shotsData = JSON.parse('{"h":[{"x":"0.9","y":"0.5","minute":"12","xG":"0.76","result":"Goal","player":"H1","team":"Home"},{"x":"0.7","y":"0.3","minute":"55","xG":"0.05","result":"MissedShots","player":"H2","team":"Home"}],"a":[{"x":"0.85","y":"0.45","minute":"80","xG":"0.33","result":"SavedShot","player":"A1","team":"Away"}]}');
</script></html>`

func TestFetchMatchesLegacyBlock(t *testing.T) {
	f := &fakeFetcher{pages: map[string]string{
		LeagueURL("EPL", 2024): leagueLegacy,
	}}

	matches, err := FetchMatches(context.Background(), f, "EPL", 2024)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}
	if matches[0].ID != 101 || matches[0].Round != 1 {
		t.Errorf("first match = %+v", matches[0])
	}
}

func TestFetchMatchesHydrationFallback(t *testing.T) {
	page := `<html><script>window.__NUXT__ = {"state": {"league": {"fixtures": [{"id": "201", "round": "7", "datetime": "2024-10-05"}]}}, "extra": undefined,};</script></html>`
	f := &fakeFetcher{pages: map[string]string{
		LeagueURL("EPL", 2024): page,
	}}

	matches, err := FetchMatches(context.Background(), f, "EPL", 2024)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 1 || matches[0].ID != 201 || matches[0].Round != 7 {
		t.Fatalf("matches = %+v", matches)
	}
}

func TestFetchMatchesFormatFailure(t *testing.T) {
	f := &fakeFetcher{pages: map[string]string{
		LeagueURL("EPL", 2024): `<html><body>nothing embedded</body></html>`,
	}}

	_, err := FetchMatches(context.Background(), f, "EPL", 2024)
	if !errors.Is(err, ErrFormat) {
		t.Fatalf("expected ErrFormat, got %v", err)
	}
}

func TestFetchShotsLegacyBlock(t *testing.T) {
	f := &fakeFetcher{pages: map[string]string{
		MatchURL(101): matchLegacy,
	}}

	rows, err := FetchShots(context.Background(), f, 101)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0].Player != "H1" || rows[0].Outcome != "goal" {
		t.Errorf("first row = %+v", rows[0])
	}
	if rows[2].Player != "A1" {
		t.Errorf("away side must come last: %+v", rows[2])
	}
	for _, r := range rows {
		if r.MatchID != 101 {
			t.Errorf("match id not stamped: %+v", r)
		}
	}
}

func TestFetchShotsHydrationFallback(t *testing.T) {
	page := `<html><script>window.__NUXT__ = {"match": {"shots": {"h": [{"x": "0.5", "y": "0.5", "minute": "10", "xG": "0.1", "result": "Goal", "player": "P"}], "a": []}}};</script></html>`
	f := &fakeFetcher{pages: map[string]string{
		MatchURL(55): page,
	}}

	rows, err := FetchShots(context.Background(), f, 55)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 || rows[0].Player != "P" {
		t.Fatalf("rows = %+v", rows)
	}
}

func TestFetchShotsFormatFailure(t *testing.T) {
	f := &fakeFetcher{pages: map[string]string{
		MatchURL(9): `<html>blocked interstitial</html>`,
	}}
	_, err := FetchShots(context.Background(), f, 9)
	if !errors.Is(err, ErrFormat) {
		t.Fatalf("expected ErrFormat, got %v", err)
	}
}
