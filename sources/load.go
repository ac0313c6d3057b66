package sources

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/reusee/taibf/logs"
	"github.com/reusee/taibf/nets"
)

type ReadFile func(path string) (Source, error)

func (Module) ReadFile() ReadFile {
	return func(path string) (Source, error) {
		content, err := os.ReadFile(path)
		if err != nil {
			return Source{}, wrap(err)
		}
		return newSource(path, content)
	}
}

type ReadStdin func() (Source, error)

func (Module) ReadStdin() ReadStdin {
	return func() (Source, error) {
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return Source{}, wrap(err)
		}
		return newSource("<stdin>", content)
	}
}

type Fetch func(ctx context.Context, url string) (Source, error)

func (Module) Fetch(
	client nets.HTTPClient,
	logger logs.Logger,
) Fetch {
	return func(ctx context.Context, url string) (Source, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return Source{}, wrap(err)
		}
		resp, err := client.Do(req)
		if err != nil {
			return Source{}, wrap(err)
		}
		defer resp.Body.Close()
		logger.DebugContext(ctx, "fetch source",
			"url", url,
			"status", resp.StatusCode,
		)
		if resp.StatusCode != http.StatusOK {
			return Source{}, fmt.Errorf("%s: %w: %s", url, ErrHTTPStatus, resp.Status)
		}
		content, err := io.ReadAll(resp.Body)
		if err != nil {
			return Source{}, wrap(err)
		}
		return newSource(url, content)
	}
}
