// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Folder is a named grouping of data objects inside a collection.
type Folder struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	SourceID string `json:"source_id,omitempty"`
}

// FolderRequest carries the parameters of the folder.new, folder.get_one and
// folder.delete calls.
type FolderRequest struct {
	CollectionRef
	Name string `json:"name"`
}

// UpdateFolderRequest carries the parameters of the folder.update call.
type UpdateFolderRequest struct {
	CollectionRef
	Name    string `json:"name"`
	NewName string `json:"new_name,omitempty"`
}
