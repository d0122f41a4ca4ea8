package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type imageDoc struct {
	Ref ImageRef `bson:"ref" json:"ref"`
}

func TestImageRefBSONShapes(t *testing.T) {
	t.Parallel()

	t.Run("legacy path string", func(t *testing.T) {
		t.Parallel()

		raw, err := bson.Marshal(bson.M{"ref": "/uploads/blog/original/old.png"})
		require.NoError(t, err)

		var doc imageDoc
		require.NoError(t, bson.Unmarshal(raw, &doc))
		require.Equal(t, RefLegacyPath, doc.Ref.Kind())
		require.Equal(t, []string{"/uploads/blog/original/old.png"}, doc.Ref.OwnedLocations())
	})

	t.Run("versioned map", func(t *testing.T) {
		t.Parallel()

		raw, err := bson.Marshal(bson.M{"ref": bson.M{
			"original": "/uploads/blog/original/a.png",
			"small":    "/uploads/blog/small/a.png",
		}})
		require.NoError(t, err)

		var doc imageDoc
		require.NoError(t, bson.Unmarshal(raw, &doc))
		require.Equal(t, RefVersioned, doc.Ref.Kind())
		require.Equal(t, "/uploads/blog/small/a.png", doc.Ref.Versions["small"])
		require.Len(t, doc.Ref.OwnedLocations(), 2)
	})

	t.Run("media library reference", func(t *testing.T) {
		t.Parallel()

		raw, err := bson.Marshal(bson.M{"ref": bson.M{
			"mediaId":  "0123456789abcdef01234567",
			"versions": bson.M{"original": "/uploads/media/original/a.png"},
		}})
		require.NoError(t, err)

		var doc imageDoc
		require.NoError(t, bson.Unmarshal(raw, &doc))
		require.Equal(t, RefMediaLibrary, doc.Ref.Kind())
		require.Equal(t, "0123456789abcdef01234567", doc.Ref.MediaID)

		// the media document owns the files, the holder does not
		require.Empty(t, doc.Ref.OwnedLocations())
	})

	t.Run("null", func(t *testing.T) {
		t.Parallel()

		raw, err := bson.Marshal(bson.M{"ref": nil})
		require.NoError(t, err)

		var doc imageDoc
		require.NoError(t, bson.Unmarshal(raw, &doc))
		require.Equal(t, RefLegacyPath, doc.Ref.Kind())
		require.Empty(t, doc.Ref.OwnedLocations())
	})
}

func TestImageRefBSONRoundTrip(t *testing.T) {
	t.Parallel()

	original := imageDoc{Ref: *NewMediaLibraryRef("abc123", AssetPathMap{
		"original": "/uploads/media/original/a.png",
	})}

	raw, err := bson.Marshal(original)
	require.NoError(t, err)

	var got imageDoc
	require.NoError(t, bson.Unmarshal(raw, &got))
	require.Equal(t, original, got)
}

func TestImageRefJSONShapes(t *testing.T) {
	t.Parallel()

	var doc imageDoc
	require.NoError(t, json.Unmarshal([]byte(`{"ref":"/uploads/old.png"}`), &doc))
	require.Equal(t, RefLegacyPath, doc.Ref.Kind())

	require.NoError(t, json.Unmarshal([]byte(`{"ref":{"small":"/uploads/blog/small/a.png"}}`), &doc))
	require.Equal(t, RefVersioned, doc.Ref.Kind())

	require.NoError(t, json.Unmarshal(
		[]byte(`{"ref":{"mediaId":"m1","versions":{"original":"/uploads/media/original/a.png"}}}`), &doc))
	require.Equal(t, RefMediaLibrary, doc.Ref.Kind())

	out, err := json.Marshal(NewVersionedAsset(AssetPathMap{"small": "/uploads/blog/small/a.png"}))
	require.NoError(t, err)
	require.JSONEq(t, `{"small":"/uploads/blog/small/a.png"}`, string(out))
}
