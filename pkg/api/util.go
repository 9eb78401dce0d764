package api

import (
	"net/url"
)

func resolve(base, endpoint string) (string, error) {
	b, err := url.Parse(base)
	if err != nil {
		return "", err
	}

	e, err := url.Parse(endpoint)
	if err != nil {
		return "", err
	}

	return b.ResolveReference(e).String(), nil
}
