// store_datastore.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

/*

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.

*/

package dawg

import (
	"bytes"
	"context"
	"fmt"

	"cloud.google.com/go/datastore"
)

// DefaultDatastoreKind is the Datastore kind a DatastoreStore files its
// entities under when none is given explicitly.
const DefaultDatastoreKind = "DawgBlob"

// dawgBlobEntity is the Datastore entity shape a DatastoreStore persists:
// the serialised node count and the concatenated C9 byte layout.
type dawgBlobEntity struct {
	NodeCount int64
	Data      []byte `datastore:",noindex"`
}

// DatastoreStore persists named, serialised flat graphs as single-blob
// entities in Cloud Datastore. It is an optional adapter: nothing in the
// core engine (the node, graph, transform, algebra, or pattern layers)
// depends on it.
type DatastoreStore struct {
	client *datastore.Client
	kind   string
}

// NewDatastoreStore wraps client for persisting graphs under kind. An
// empty kind defaults to DefaultDatastoreKind.
func NewDatastoreStore(client *datastore.Client, kind string) *DatastoreStore {
	if kind == "" {
		kind = DefaultDatastoreKind
	}
	return &DatastoreStore{client: client, kind: kind}
}

func (s *DatastoreStore) key(name string) *datastore.Key {
	return datastore.NameKey(s.kind, name, nil)
}

// Put serialises g with the C9 codec and writes it to Datastore under
// name, overwriting any existing entity of that name.
func (s *DatastoreStore) Put(ctx context.Context, name string, g *CompactGraph) error {
	var buf bytes.Buffer
	if err := WriteCompactGraph(&buf, g); err != nil {
		return fmt.Errorf("dawg: serialising %q: %w", name, err)
	}
	entity := dawgBlobEntity{NodeCount: int64(g.Len()), Data: buf.Bytes()}
	if _, err := s.client.Put(ctx, s.key(name), &entity); err != nil {
		return fmt.Errorf("dawg: putting %q to datastore: %w", name, err)
	}
	return nil
}

// Get reads back the graph stored under name. A missing entity surfaces
// datastore.ErrNoSuchEntity unchanged, so callers can distinguish
// "not found" from a transport error.
func (s *DatastoreStore) Get(ctx context.Context, name string) (*CompactGraph, error) {
	var entity dawgBlobEntity
	if err := s.client.Get(ctx, s.key(name), &entity); err != nil {
		if err == datastore.ErrNoSuchEntity {
			return nil, err
		}
		return nil, fmt.Errorf("dawg: getting %q from datastore: %w", name, err)
	}
	g, err := ReadCompactGraph(bytes.NewReader(entity.Data), int(entity.NodeCount))
	if err != nil {
		return nil, fmt.Errorf("dawg: decoding %q: %w", name, err)
	}
	return g, nil
}
