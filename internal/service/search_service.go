// Package service 提供了搜索相关的业务逻辑。
package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"internhub-go/internal/model"
	"internhub-go/pkg/log"
	"io"

	"github.com/elastic/go-elasticsearch/v8"
)

// SearchFilters 是岗位搜索的可选过滤条件。
type SearchFilters struct {
	Category string
	Country  string
	Remote   *bool
	Paid     *bool
}

// SearchService 接口定义了岗位搜索操作。
type SearchService interface {
	IndexInternship(ctx context.Context, i model.Internship) error
	Search(ctx context.Context, query string, topK int, filters SearchFilters) ([]model.SearchHit, error)
}

type searchService struct {
	esClient  *elasticsearch.Client
	indexName string
	indexFn   func(ctx context.Context, indexName string, doc model.EsInternship) error
}

// NewSearchService 创建一个新的 SearchService 实例。
func NewSearchService(esClient *elasticsearch.Client, indexName string, indexFn func(ctx context.Context, indexName string, doc model.EsInternship) error) SearchService {
	return &searchService{esClient: esClient, indexName: indexName, indexFn: indexFn}
}

// IndexInternship 将岗位写入搜索索引。
func (s *searchService) IndexInternship(ctx context.Context, i model.Internship) error {
	doc := model.EsInternship{
		InternshipID: i.ID,
		Title:        i.Title,
		Company:      i.Company,
		Description:  i.Description,
		Category:     i.Category,
		Role:         i.Role,
		Country:      i.Location.Country,
		City:         i.Location.City,
		IsRemote:     i.Location.IsRemote,
		IsPaid:       i.Stipend.IsPaid,
	}
	return s.indexFn(ctx, s.indexName, doc)
}

// Search 对岗位索引执行关键词搜索，按条件过滤。
func (s *searchService) Search(ctx context.Context, query string, topK int, filters SearchFilters) ([]model.SearchHit, error) {
	log.Infof("[SearchService] 开始执行岗位搜索, query: '%s', topK: %d", query, topK)

	// 1. 构建查询：标题/公司/描述全文匹配 + 过滤条件
	must := []map[string]interface{}{}
	if query != "" {
		must = append(must, map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  query,
				"fields": []string{"title^2", "company", "description"},
			},
		})
	}
	filter := []map[string]interface{}{}
	if filters.Category != "" {
		filter = append(filter, map[string]interface{}{"term": map[string]interface{}{"category": filters.Category}})
	}
	if filters.Country != "" {
		filter = append(filter, map[string]interface{}{"term": map[string]interface{}{"country": filters.Country}})
	}
	if filters.Remote != nil {
		filter = append(filter, map[string]interface{}{"term": map[string]interface{}{"is_remote": *filters.Remote}})
	}
	if filters.Paid != nil {
		filter = append(filter, map[string]interface{}{"term": map[string]interface{}{"is_paid": *filters.Paid}})
	}

	esQuery := map[string]interface{}{
		"size": topK,
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"must":   must,
				"filter": filter,
			},
		},
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(esQuery); err != nil {
		log.Errorf("[SearchService] 序列化 Elasticsearch 查询失败: %v", err)
		return nil, fmt.Errorf("failed to encode es query: %w", err)
	}

	// 2. 执行搜索
	res, err := s.esClient.Search(
		s.esClient.Search.WithContext(ctx),
		s.esClient.Search.WithIndex(s.indexName),
		s.esClient.Search.WithBody(&buf),
		s.esClient.Search.WithTrackTotalHits(true),
	)
	if err != nil {
		log.Errorf("[SearchService] 向 Elasticsearch 发送搜索请求失败: %v", err)
		return nil, fmt.Errorf("elasticsearch search failed: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		bodyBytes, _ := io.ReadAll(res.Body)
		log.Errorf("[SearchService] Elasticsearch 返回错误, status: %s, body: %s", res.Status(), string(bodyBytes))
		return nil, fmt.Errorf("elasticsearch returned an error: %s", res.String())
	}

	// 3. 解析结果
	var esResponse struct {
		Hits struct {
			Hits []struct {
				Source model.EsInternship `json:"_source"`
				Score  float64            `json:"_score"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&esResponse); err != nil {
		log.Errorf("[SearchService] 解析 Elasticsearch 响应失败: %v", err)
		return nil, fmt.Errorf("failed to decode es response: %w", err)
	}

	hits := make([]model.SearchHit, 0, len(esResponse.Hits.Hits))
	for _, hit := range esResponse.Hits.Hits {
		hits = append(hits, model.SearchHit{
			InternshipID: hit.Source.InternshipID,
			Title:        hit.Source.Title,
			Company:      hit.Source.Company,
			Category:     hit.Source.Category,
			Score:        hit.Score,
		})
	}
	log.Infof("[SearchService] 搜索完成，命中 %d 条", len(hits))
	return hits, nil
}
