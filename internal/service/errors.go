package service

import "github.com/Skotchmaster/kitchenpos/internal/models"

var (
	ErrValidation = models.ErrValidation
	ErrNotFound   = models.ErrNotFound
	ErrConflict   = models.ErrConflict
)
