package repository

import (
	"github.com/lshigami/Compass/internal/idutil"
	"github.com/lshigami/Compass/internal/model"
	"gorm.io/gorm"
)

type ClusterRepository interface {
	Create(cluster *model.Cluster) error
	FindByIDs(ids []string) ([]model.Cluster, error)
}

type clusterRepository struct {
	db *gorm.DB
}

func NewClusterRepository(db *gorm.DB) ClusterRepository {
	return &clusterRepository{db: db}
}

func (r *clusterRepository) Create(cluster *model.Cluster) error {
	return r.db.Create(cluster).Error
}

func (r *clusterRepository) FindByIDs(ids []string) ([]model.Cluster, error) {
	lookup := make([]string, 0, len(ids)*2)
	for _, id := range ids {
		lookup = append(lookup, idutil.Forms(id)...)
	}
	var clusters []model.Cluster
	if err := r.db.Where("cluster_id IN ?", lookup).Find(&clusters).Error; err != nil {
		return nil, err
	}
	return clusters, nil
}
