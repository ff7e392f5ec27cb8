// Copyright (c) 2018 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package lvldb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelDB(t *testing.T) {
	var dbs []*LevelDB
	var (
		key        = []byte("123")
		value      = []byte("456")
		inValidKey = []byte("abc")
	)

	db, err := New(t.TempDir(), Options{16, 16})
	assert.Equal(t, err, nil)
	defer db.Close()
	dbs = append(dbs, db)

	memdb, err := NewMem()
	assert.Equal(t, err, nil)
	defer memdb.Close()
	dbs = append(dbs, memdb)

	for _, db := range dbs {
		err = db.Put(key, value)
		assert.Equal(t, err, nil)

		ret1, err := db.Get(key)
		assert.Equal(t, err, nil)

		ret2, err := db.Has(key)
		assert.Equal(t, err, nil)

		ret3, err := db.Has(inValidKey)
		assert.Equal(t, err, nil)

		err = db.Delete(key)
		assert.Equal(t, err, nil)

		_, ret4 := db.Get(key)

		tests := []struct {
			ret      interface{}
			expected interface{}
		}{
			{ret1, value},
			{ret2, true},
			{ret3, false},
			{db.IsNotFound(ret4), true},
		}

		for _, tt := range tests {
			assert.Equal(t, tt.expected, tt.ret)
		}
	}
}

func TestLevelDBBatch(t *testing.T) {
	var (
		key   = []byte("123")
		value = []byte("456")
	)
	db, err := New(t.TempDir(), Options{16, 16})
	assert.Equal(t, err, nil)
	defer db.Close()

	dbBatch := db.NewBatch()

	err = dbBatch.Put(key, value)
	assert.Equal(t, err, nil)

	ret1 := dbBatch.Len()
	err = dbBatch.Write()
	assert.Equal(t, err, nil)

	ret2, err := db.Get(key)
	assert.Equal(t, err, nil)

	dbBatch = dbBatch.NewBatch()
	err = dbBatch.Put(key, value)
	assert.Equal(t, err, nil)

	err = dbBatch.Delete(key)
	assert.Equal(t, err, nil)

	tests := []struct {
		ret      interface{}
		expected interface{}
	}{
		{ret1, 1},
		{ret2, value},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.ret)
	}
}
