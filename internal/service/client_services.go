package service

import (
	"github.com/obolotin/daykeeper/internal/adapter"
	"github.com/obolotin/daykeeper/internal/logger"
	"github.com/obolotin/daykeeper/internal/store"
)

type ClientServices struct {
	SyncService ClientSyncService
	FileService FileTransferService
	SyncJob     ClientSyncJob
}

func NewClientServices(storages *store.ClientStorages, remote adapter.RemoteStore, objects adapter.ObjectStorage, log *logger.Logger) *ClientServices {
	syncSvc := NewClientSyncService(storages, remote, log)
	fileSvc := NewFileTransferService(objects, log)

	return &ClientServices{
		SyncService: syncSvc,
		FileService: fileSvc,
		SyncJob:     NewClientSyncJob(syncSvc),
	}
}
