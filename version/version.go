// Package version checks for newer releases of the application.
package version

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/metafates/gache"
	"github.com/tintscan/tintscan/filesystem"
	"github.com/tintscan/tintscan/network"
	"github.com/tintscan/tintscan/util"
	"github.com/tintscan/tintscan/where"
)

const (
	repository  = "tintscan/tintscan"
	releasesAPI = "https://api.github.com/repos/" + repository + "/releases/latest"
	// ReleasesURL is the page listing published releases.
	ReleasesURL = "https://github.com/" + repository + "/releases"
)

var versionCacher = gache.New[string](&gache.Options{
	Path:       where.Version(),
	Lifetime:   time.Hour * 24 * 2,
	FileSystem: &filesystem.GacheFs{},
})

// Latest returns the newest released version, cached for two days.
func Latest() (version string, err error) {
	ver, expired, err := versionCacher.Get()
	if err != nil {
		return "", err
	}

	if !expired && ver != "" {
		return ver, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	resp, err := network.Get(ctx, releasesAPI, "application/vnd.github+json")
	if err != nil {
		return
	}

	defer util.Ignore(resp.Body.Close)

	var release struct {
		TagName string `json:"tag_name"`
	}

	if err = json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return
	}

	if release.TagName == "" {
		err = errors.New("empty tag name")
		return
	}

	version = strings.TrimPrefix(release.TagName, "v")
	_ = versionCacher.Set(version)
	return
}
