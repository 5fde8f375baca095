// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package syncserver

import (
	"testing"

	"github.com/Syncano/syncano-dotnet-sub001/models"
	"github.com/stretchr/testify/assert"
)

func TestCovers(t *testing.T) {
	object := models.Target{ProjectID: "1", CollectionID: "10", CollectionKey: "news", DataID: "7"}

	tests := []struct {
		name  string
		scope models.Target
		want  bool
	}{
		{name: "project", scope: models.ProjectTarget("1"), want: true},
		{name: "other project", scope: models.ProjectTarget("2"), want: false},
		{name: "collection by id", scope: models.Target{ProjectID: "1", CollectionID: "10"}, want: true},
		{name: "collection by key", scope: models.Target{ProjectID: "1", CollectionKey: "news"}, want: true},
		{name: "other collection", scope: models.Target{ProjectID: "1", CollectionID: "11"}, want: false},
		{name: "same collection id other project", scope: models.Target{ProjectID: "2", CollectionID: "10"}, want: false},
		{name: "data object", scope: models.Target{ProjectID: "1", CollectionID: "10", DataID: "7"}, want: true},
		{name: "other data object", scope: models.Target{ProjectID: "1", CollectionID: "10", DataID: "8"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, covers(tt.scope, object))
		})
	}
}

func TestRegistry_AddIsIdempotent(t *testing.T) {
	r := newRegistry()
	key := newScopeKey(models.ProjectTarget(" 1 "), "")

	assert.True(t, r.add(key))
	assert.False(t, r.add(newScopeKey(models.ProjectTarget("1"), models.ContextConnection)))
	assert.Equal(t, 1, r.size())
}

func TestRegistry_Matching(t *testing.T) {
	r := newRegistry()
	project := newScopeKey(models.ProjectTarget("1"), models.ContextConnection)
	projectSession := newScopeKey(models.ProjectTarget("1"), models.ContextSession)
	collection := newScopeKey(models.Target{ProjectID: "1", CollectionKey: "news"}, models.ContextConnection)
	other := newScopeKey(models.ProjectTarget("2"), models.ContextConnection)
	for _, k := range []scopeKey{project, projectSession, collection, other} {
		r.add(k)
	}

	got := r.matching(models.Target{ProjectID: "1", CollectionKey: "news", DataID: "3"})
	assert.ElementsMatch(t, []scopeKey{project, projectSession, collection}, got)

	assert.Empty(t, r.matching(models.ProjectTarget("3")))
}

func TestRegistry_RemoveAndDropContext(t *testing.T) {
	r := newRegistry()
	conn := newScopeKey(models.ProjectTarget("1"), models.ContextConnection)
	sess := newScopeKey(models.ProjectTarget("1"), models.ContextSession)
	r.add(conn)
	r.add(sess)

	assert.False(t, r.remove(newScopeKey(models.ProjectTarget("9"), "")))
	assert.Equal(t, 1, r.dropContext(models.ContextSession))
	assert.True(t, r.contains(conn))
	assert.False(t, r.contains(sess))

	assert.True(t, r.remove(conn))
	assert.Equal(t, 0, r.size())
}

func TestRegistry_ClearRejectsLaterAdds(t *testing.T) {
	r := newRegistry()
	key := newScopeKey(models.ProjectTarget("1"), "")
	r.add(key)

	r.clear()
	assert.Equal(t, 0, r.size())
	assert.False(t, r.add(key))
	assert.Empty(t, r.matching(models.ProjectTarget("1")))
}
