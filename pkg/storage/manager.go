package storage

import (
	"context"
	"fmt"

	"github.com/shashiranjanraj/kashvi-admin/config"
)

// Connect registers the disks named in configuration. The local disk is
// always available; the s3 disk is registered only when S3_BUCKET is set.
func Connect(ctx context.Context) error {
	RegisterDisk("local", NewLocalDisk(config.StorageLocalRoot(), config.StorageURL()))

	if bucket := config.StorageS3Bucket(); bucket != "" {
		s3disk, err := NewS3Disk(ctx, S3Config{
			Bucket:    bucket,
			Region:    config.StorageS3Region(),
			AccessKey: config.StorageS3Key(),
			SecretKey: config.StorageS3Secret(),
			Endpoint:  config.StorageS3Endpoint(),
		})
		if err != nil {
			return fmt.Errorf("storage: s3 disk: %w", err)
		}
		RegisterDisk("s3", s3disk)
	}

	if err := SetDefault(config.StorageDefault()); err != nil {
		return err
	}
	return nil
}
