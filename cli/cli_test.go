package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	for _, args := range [][]string{{"hash-password", "s3cret-pass"}, {"hash-password"}} {
		out := new(bytes.Buffer)
		root := NewRootCommand()
		root.SetArgs(args)
		root.SetIn(strings.NewReader("s3cret-pass\n"))
		root.SetOut(out)

		require.NoError(t, root.Execute())
		hash := strings.TrimSpace(out.String())
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("s3cret-pass")))
	}
}

func TestHashPasswordRejectsEmpty(t *testing.T) {
	root := NewRootCommand()
	root.SetArgs([]string{"hash-password"})
	root.SetIn(strings.NewReader("\n"))
	root.SetOut(new(bytes.Buffer))

	assert.Error(t, root.Execute())
}
