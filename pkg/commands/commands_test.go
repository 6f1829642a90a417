package commands_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/containerkit/imageref/pkg/commands"
	"github.com/containerkit/imageref/pkg/errdefs"
	"github.com/containerkit/imageref/pkg/imageref"
)

func runCommand(t *testing.T, cmd *cli.Command, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd.Writer = buf
	cmd.ErrWriter = buf
	err := cmd.Run(context.Background(), append([]string{cmd.Name}, args...))
	return buf.String(), err
}

func TestParseCommand_Text(t *testing.T) {
	out, err := runCommand(t, commands.NewParseCommand().ToCLI(),
		"docker.io/library/nginx:latest")
	require.NoError(t, err)

	assert.Contains(t, out, "reference: docker.io/library/nginx:latest")
	assert.Contains(t, out, "registry: docker.io")
	assert.Contains(t, out, "name:     library/nginx")
	assert.Contains(t, out, "tag:      latest")
	assert.Contains(t, out, "digest:   <none>")
}

func TestParseCommand_JSON(t *testing.T) {
	out, err := runCommand(t, commands.NewParseCommand().ToCLI(),
		"--format", "json", "nginx:latest")
	require.NoError(t, err)

	var got imageref.Reference
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, imageref.MustParse("nginx:latest"), got)
}

func TestParseCommand_JSONList(t *testing.T) {
	out, err := runCommand(t, commands.NewParseCommand().ToCLI(),
		"--format", "json", "nginx", "redis:7")
	require.NoError(t, err)

	var got []imageref.Reference
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Len(t, got, 2)
}

func TestParseCommand_Errors(t *testing.T) {
	_, err := runCommand(t, commands.NewParseCommand().ToCLI(), "NGINX")
	assert.ErrorIs(t, err, imageref.ErrInvalidFormat)

	_, err = runCommand(t, commands.NewParseCommand().ToCLI())
	assert.ErrorIs(t, err, errdefs.ErrInvalidParameter)

	_, err = runCommand(t, commands.NewParseCommand().ToCLI(),
		"--format", "xml", "nginx")
	assert.ErrorIs(t, err, errdefs.ErrUnsupported)
}

func TestRenderCommand(t *testing.T) {
	out, err := runCommand(t, commands.NewRenderCommand().ToCLI(),
		"--registry", "docker.io", "--name", "library/nginx", "--tag", "latest")
	require.NoError(t, err)
	assert.Equal(t, "docker.io/library/nginx:latest\n", out)
}

func TestRenderCommand_Invalid(t *testing.T) {
	// a bare single-label registry cannot be told apart from a name
	// path component when rendered
	_, err := runCommand(t, commands.NewRenderCommand().ToCLI(),
		"--registry", "myhost", "--name", "app")
	assert.ErrorIs(t, err, imageref.ErrInvalidFormat)
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, commands.NewVersionCommand().ToCLI())
	require.NoError(t, err)
	assert.Contains(t, out, "Version:")
	assert.Contains(t, out, "Go version:")

	out, err = runCommand(t, commands.NewVersionCommand().ToCLI(), "--short")
	require.NoError(t, err)
	assert.Equal(t, "dev", strings.TrimSpace(out))
}
