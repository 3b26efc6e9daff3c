package licenselist

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/doubleopen-project/spdx-go/errors"
	"github.com/doubleopen-project/spdx-go/logger"
)

// DefaultBaseURL is the canonical location of the license-list-data JSON
// files.
const DefaultBaseURL = "https://raw.githubusercontent.com/spdx/license-list-data/main/json/"

// FromGitHub fetches the current license list and its exceptions from
// the license-list-data repository. A nil client uses
// http.DefaultClient.
func FromGitHub(ctx context.Context, client *http.Client) (*LicenseList, error) {
	return Fetch(ctx, client, DefaultBaseURL)
}

// Fetch retrieves licenses.json and exceptions.json relative to baseURL
// and merges them into one list. The version and release date are taken
// from the licenses file.
func Fetch(ctx context.Context, client *http.Client, baseURL string) (*LicenseList, error) {
	if client == nil {
		client = http.DefaultClient
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	var list LicenseList
	if err := fetchJSON(ctx, client, baseURL+"licenses.json", &list); err != nil {
		return nil, errors.Wrap(err, "fetching license list")
	}

	var exceptions struct {
		Exceptions []Exception `json:"exceptions"`
	}
	if err := fetchJSON(ctx, client, baseURL+"exceptions.json", &exceptions); err != nil {
		return nil, errors.Wrap(err, "fetching license exceptions")
	}
	list.Exceptions = exceptions.Exceptions

	logger.Logger.Debugw("fetched license list",
		"version", list.LicenseListVersion,
		"licenses", len(list.Licenses),
		"exceptions", len(list.Exceptions),
	)
	return &list, nil
}

func fetchJSON(ctx context.Context, client *http.Client, url string, into any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.Wrapf(err, "building request for %q", url)
	}

	resp, err := client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "requesting %q", url)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Newf("requesting %q: unexpected status %s", url, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(into); err != nil {
		return errors.Wrapf(err, "decoding %q", url)
	}
	return nil
}
