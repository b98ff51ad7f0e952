package port

import "context"

//go:generate mockgen -destination=mocks/mock_url_opener.go -package=mocks . URLOpener

// URLOpener hands a URL to the desktop's default handler.
type URLOpener interface {
	Open(ctx context.Context, url string) error
}
