package serve

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/thomas-vilte/commitwise/internal/config"
	"github.com/thomas-vilte/commitwise/internal/i18n"
	"github.com/urfave/cli/v3"
)

func init() {
	color.NoColor = true
}

type mockServer struct {
	mock.Mock
}

func (m *mockServer) ListenAndServe(ctx context.Context, addr string) error {
	args := m.Called(ctx, addr)
	return args.Error(0)
}

func runServe(t *testing.T, cfg *config.Config, server Server, args ...string) (string, error) {
	t.Helper()
	translations, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)

	var out bytes.Buffer
	app := &cli.Command{
		Writer:   &out,
		Commands: []*cli.Command{NewServeCommandFactory(server).CreateCommand(translations, cfg)},
	}
	err = app.Run(context.Background(), append([]string{"commitwise", "serve"}, args...))
	return out.String(), err
}

func TestServeCommand(t *testing.T) {
	t.Run("uses the configured address", func(t *testing.T) {
		// arrange
		server := new(mockServer)
		server.On("ListenAndServe", mock.Anything, ":9090").Return(nil).Once()
		cfg := &config.Config{GeminiAPIKey: "key", ListenAddr: ":9090"}

		// act
		out, err := runServe(t, cfg, server)

		// assert
		require.NoError(t, err)
		assert.Contains(t, out, "http://localhost:9090")
		assert.NotContains(t, out, "API_KEY")
		server.AssertExpectations(t)
	})

	t.Run("flag overrides the address and warns without a key", func(t *testing.T) {
		server := new(mockServer)
		server.On("ListenAndServe", mock.Anything, "127.0.0.1:7000").Return(nil).Once()

		out, err := runServe(t, &config.Config{}, server, "--addr", "127.0.0.1:7000")

		require.NoError(t, err)
		assert.Contains(t, out, "http://127.0.0.1:7000")
		assert.Contains(t, out, "API_KEY")
	})

	t.Run("server errors are returned", func(t *testing.T) {
		server := new(mockServer)
		server.On("ListenAndServe", mock.Anything, ":8080").Return(errors.New("address already in use")).Once()

		_, err := runServe(t, &config.Config{GeminiAPIKey: "key"}, server)

		assert.EqualError(t, err, "address already in use")
	})
}

func TestDisplayURL(t *testing.T) {
	assert.Equal(t, "http://localhost:8080", displayURL(":8080"))
	assert.Equal(t, "http://0.0.0.0:80", displayURL("0.0.0.0:80"))
}
