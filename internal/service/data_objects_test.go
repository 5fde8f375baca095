// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Syncano/syncano-dotnet-sub001/models"
)

var testDataRef = models.DataObjectRef{CollectionRef: testCollection, DataID: "5"}

// ── New / Get ────────────────────────────────────────────────────────────────

func TestDataObjectService_New(t *testing.T) {
	svc, mockAdapter := newTestServices(t)
	ctx := context.Background()
	req := models.NewDataObjectRequest{
		CollectionRef:    testCollection,
		Title:            "first",
		State:            models.StateModerated,
		AdditionalFields: map[string]string{"price": "10"},
	}

	mockAdapter.EXPECT().
		Call(ctx, "data.new", req, gomock.Any()).
		SetArg(3, models.DataObject{ID: "5", Title: "first", State: models.StateModerated}).
		Return(nil)

	object, err := svc.DataObjects.New(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "5", object.ID)
	assert.Equal(t, models.StateModerated, object.State)
}

func TestDataObjectService_Get(t *testing.T) {
	svc, mockAdapter := newTestServices(t)
	ctx := context.Background()
	req := models.GetDataObjectsRequest{CollectionRef: testCollection, Folders: []string{"inbox"}, Limit: 2}

	mockAdapter.EXPECT().
		Call(ctx, "data.get", req, gomock.Any()).
		SetArg(3, []models.DataObject{{ID: "5"}, {ID: "6"}}).
		Return(nil)

	objects, err := svc.DataObjects.Get(ctx, req)
	require.NoError(t, err)
	assert.Len(t, objects, 2)
}

func TestDataObjectService_GetOneByKey(t *testing.T) {
	svc, mockAdapter := newTestServices(t)
	ctx := context.Background()
	ref := models.DataObjectRef{CollectionRef: testCollection, DataKey: "order-1"}

	mockAdapter.EXPECT().
		Call(ctx, "data.get_one", ref, gomock.Any()).
		SetArg(3, models.DataObject{ID: "5", Key: "order-1"}).
		Return(nil)

	object, err := svc.DataObjects.GetOne(ctx, ref)
	require.NoError(t, err)
	assert.Equal(t, "order-1", object.Key)
}

// ── Update / Merge ───────────────────────────────────────────────────────────

func TestDataObjectService_UpdateSendsReplace(t *testing.T) {
	svc, mockAdapter := newTestServices(t)
	ctx := context.Background()
	req := models.UpdateDataObjectRequest{DataObjectRef: testDataRef, Title: "renamed"}

	want := req
	want.Method = models.UpdateReplace
	mockAdapter.EXPECT().
		Call(ctx, "data.update", want, gomock.Any()).
		SetArg(3, models.DataObject{ID: "5", Title: "renamed"}).
		Return(nil)

	object, err := svc.DataObjects.Update(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "renamed", object.Title)
}

func TestDataObjectService_MergeSendsMerge(t *testing.T) {
	svc, mockAdapter := newTestServices(t)
	ctx := context.Background()

	// A caller-provided method is overridden.
	req := models.UpdateDataObjectRequest{DataObjectRef: testDataRef, Text: "more", Method: models.UpdateReplace}

	mockAdapter.EXPECT().
		Call(ctx, "data.update", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, params any, _ any) error {
			sent, ok := params.(models.UpdateDataObjectRequest)
			require.True(t, ok)
			assert.Equal(t, models.UpdateMerge, sent.Method)
			assert.Equal(t, "more", sent.Text)
			return nil
		})

	_, err := svc.DataObjects.Merge(ctx, req)
	require.NoError(t, err)
}

// ── Delete / Count ───────────────────────────────────────────────────────────

func TestDataObjectService_Delete(t *testing.T) {
	svc, mockAdapter := newTestServices(t)
	ctx := context.Background()
	req := models.DeleteDataObjectsRequest{CollectionRef: testCollection, State: models.StateRejected}

	mockAdapter.EXPECT().Call(ctx, "data.delete", req, nil).Return(nil)

	require.NoError(t, svc.DataObjects.Delete(ctx, req))
}

func TestDataObjectService_Count(t *testing.T) {
	svc, mockAdapter := newTestServices(t)
	ctx := context.Background()
	req := models.GetDataObjectsRequest{CollectionRef: testCollection, State: models.StatePending, Limit: 10, OrderBy: "created_at"}

	want := models.GetDataObjectsRequest{CollectionRef: testCollection, State: models.StatePending}
	mockAdapter.EXPECT().
		Call(ctx, "data.count", want, gomock.Any()).
		SetArg(3, countResult{Count: 42}).
		Return(nil)

	count, err := svc.DataObjects.Count(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, 42, count)
}

func TestDataObjectService_CountError(t *testing.T) {
	svc, mockAdapter := newTestServices(t)
	ctx := context.Background()

	mockAdapter.EXPECT().
		Call(ctx, "data.count", gomock.Any(), gomock.Any()).
		Return(assert.AnError)

	count, err := svc.DataObjects.Count(ctx, models.GetDataObjectsRequest{CollectionRef: testCollection})
	require.ErrorIs(t, err, assert.AnError)
	assert.Zero(t, count)
}
