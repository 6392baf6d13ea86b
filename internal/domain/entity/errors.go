package entity

import "errors"

// ErrImageLoad изображение не удалось получить из источника.
var ErrImageLoad = errors.New("image load failed")
