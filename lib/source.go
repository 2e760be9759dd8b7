package lib

import "image"

// Source is an icon the preview can show.
type Source interface {
	Image() (image.Image, error)
	LoadingMsg() string
	Footer() string
}
