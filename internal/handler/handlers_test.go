package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-shop-api/internal/config"
	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/service"
)

func TestNewHandlers(t *testing.T) {
	h, err := NewHandlers(&service.Services{}, config.Server{CORSAllowedOrigins: []string{"*"}}, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
}

func TestNewHandlers_NilServices(t *testing.T) {
	h, err := NewHandlers(nil, config.Server{}, logger.Nop())

	assert.ErrorIs(t, err, errNoServicesProvided)
	assert.Nil(t, h)
}
