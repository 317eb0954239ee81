package codetex_test

import (
	"testing"

	"github.com/fwojciec/codetex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArtifactNaming_Name(t *testing.T) {
	t.Parallel()

	t.Run("default naming", func(t *testing.T) {
		t.Parallel()

		n := codetex.DefaultArtifactNaming()

		assert.Equal(t, "slide-0-0.py", n.Name(0, 0))
		assert.Equal(t, "slide-12-3.py", n.Name(12, 3))
	})

	t.Run("custom naming", func(t *testing.T) {
		t.Parallel()

		n := codetex.ArtifactNaming{Prefix: "ex", Separator: "_", Extension: ".sh"}

		assert.Equal(t, "ex_4_1.sh", n.Name(4, 1))
	})
}

func TestArtifactNaming_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		naming  codetex.ArtifactNaming
		wantErr bool
	}{
		{name: "default", naming: codetex.DefaultArtifactNaming()},
		{name: "no extension", naming: codetex.ArtifactNaming{Prefix: "s", Separator: "-"}},
		{name: "empty prefix", naming: codetex.ArtifactNaming{Separator: "-", Extension: ".py"}},
		{name: "missing separator", naming: codetex.ArtifactNaming{Prefix: "s", Extension: ".py"}, wantErr: true},
		{name: "slash in prefix", naming: codetex.ArtifactNaming{Prefix: "../s", Separator: "-"}, wantErr: true},
		{name: "slash in separator", naming: codetex.ArtifactNaming{Prefix: "s", Separator: "/"}, wantErr: true},
		{name: "extension without dot", naming: codetex.ArtifactNaming{Prefix: "s", Separator: "-", Extension: "py"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.naming.Validate()

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, codetex.EINVALID, codetex.ErrorCode(err))
				return
			}
			require.NoError(t, err)
		})
	}
}
