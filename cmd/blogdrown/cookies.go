package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	blogdrown "github.com/blogdrown/blogdrown-go"
)

// The session cookie is persisted under the user config dir so login state
// survives across CLI invocations.

type storedCookie struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func cookieFilePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "blogdrown", "cookies.json"), nil
}

func loadCookies(jar http.CookieJar, base *url.URL) {
	path, err := cookieFilePath()
	if err != nil {
		return
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	var stored []storedCookie
	if err := json.Unmarshal(data, &stored); err != nil {
		log.Debug().Err(err).Str("path", path).Msg("discarding unreadable cookie file")
		return
	}
	cookies := make([]*http.Cookie, 0, len(stored))
	for _, sc := range stored {
		cookies = append(cookies, &http.Cookie{Name: sc.Name, Value: sc.Value})
	}
	jar.SetCookies(base, cookies)
}

func saveCookies(jar http.CookieJar, base *url.URL) {
	path, err := cookieFilePath()
	if err != nil {
		return
	}
	var stored []storedCookie
	for _, c := range jar.Cookies(base) {
		stored = append(stored, storedCookie{Name: c.Name, Value: c.Value})
	}
	data, err := json.Marshal(stored)
	if err != nil {
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		log.Debug().Err(err).Msg("cannot create config dir")
		return
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		log.Debug().Err(err).Str("path", path).Msg("cannot persist cookies")
	}
}

// runWithClient builds an SDK client with the persisted session cookie
// loaded, runs fn, and saves whatever cookie state the command left behind.
func runWithClient(fn func(ctx context.Context, c *blogdrown.Client) error) error {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return err
	}
	base, err := url.Parse(apiFlag)
	if err != nil {
		return err
	}
	loadCookies(jar, base)

	c, err := blogdrown.New(apiFlag, blogdrown.WithCookieJar(jar))
	if err != nil {
		return err
	}

	runErr := fn(context.Background(), c)
	saveCookies(jar, base)
	return runErr
}
