// Copyright (c) 2024 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>
package nodestore

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thejohnfreeman/xrplorer/lvldb"
	"github.com/thejohnfreeman/xrplorer/xrp"
)

func newTestStore(t *testing.T) (*Store, *lvldb.LevelDB) {
	db, err := lvldb.NewMem()
	assert.Nil(t, err)
	store, err := New(db, 16)
	assert.Nil(t, err)
	return store, db
}

func TestStoreFetch(t *testing.T) {
	store, db := newTestStore(t)
	defer store.Close()

	digest := xrp.Sha512Half([]byte("blob"))
	blob := []byte{0x4d, 0x49, 0x4e, 0x00, 1, 2, 3}
	assert.Nil(t, db.Put(digest.Bytes(), blob))

	object, err := store.Fetch(digest)
	assert.Nil(t, err)
	assert.Equal(t, blob, object.Data())

	missing := xrp.Sha512Half([]byte("missing"))
	_, err = store.Fetch(missing)
	assert.True(t, store.IsNotFound(err))
}

func TestStoreCache(t *testing.T) {
	store, db := newTestStore(t)
	defer store.Close()

	digest := xrp.Sha512Half([]byte("cached"))
	blob := []byte{0x4c, 0x57, 0x52, 0x00}
	assert.Nil(t, db.Put(digest.Bytes(), blob))

	_, err := store.Fetch(digest)
	assert.Nil(t, err)

	// backend loss is invisible while the object is cached
	assert.Nil(t, db.Delete(digest.Bytes()))
	object, err := store.Fetch(digest)
	assert.Nil(t, err)
	assert.Equal(t, blob, object.Data())
}
