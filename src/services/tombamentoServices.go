package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/PatrimonioSaude/Patrimonio-Backend/src/models"
	"github.com/PatrimonioSaude/Patrimonio-Backend/src/utils"
	excelize "github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

var (
	imeiRegex = regexp.MustCompile(`^\d{15}$`)
	macRegex  = regexp.MustCompile(`^([0-9A-Fa-f]{2}[:-]){5}([0-9A-Fa-f]{2})$`)
)

// Cache entry
type cacheEntry struct {
	Data      interface{}
	ExpiresAt time.Time
}

type TombamentoService struct {
	db    *gorm.DB
	cache map[string]*cacheEntry
	mutex sync.RWMutex
}

func NewTombamentoService(db *gorm.DB) *TombamentoService {
	service := &TombamentoService{
		db:    db,
		cache: make(map[string]*cacheEntry),
	}

	// Clean up cache every 30 minutes
	go service.cleanupCache()

	return service
}

func (s *TombamentoService) cleanupCache() {
	ticker := time.NewTicker(30 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		s.mutex.Lock()
		now := time.Now()
		for key, entry := range s.cache {
			if now.After(entry.ExpiresAt) {
				delete(s.cache, key)
			}
		}
		s.mutex.Unlock()
	}
}

func (s *TombamentoService) setCache(key string, data interface{}, duration time.Duration) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.cache[key] = &cacheEntry{
		Data:      data,
		ExpiresAt: time.Now().Add(duration),
	}
}

func (s *TombamentoService) getCache(key string) (interface{}, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	entry, exists := s.cache[key]
	if !exists || time.Now().After(entry.ExpiresAt) {
		return nil, false
	}

	return entry.Data, true
}

func (s *TombamentoService) invalidateCache(prefix string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for key := range s.cache {
		if strings.HasPrefix(key, prefix) {
			delete(s.cache, key)
		}
	}
}

// validateTombamento checks the field rules that apply before persistence.
func validateTombamento(t *models.TombamentoModel) error {
	if t.FkProduto == 0 {
		return NewValidationError("fkproduto", "Produto e número de tombamento são obrigatórios")
	}
	if strings.TrimSpace(t.Tombamento) == "" {
		return NewValidationError("tombamento", "Produto e número de tombamento são obrigatórios")
	}
	if t.Imei != nil && *t.Imei != "" && !imeiRegex.MatchString(*t.Imei) {
		return NewValidationError("imei", "IMEI deve conter exatamente 15 dígitos")
	}
	if t.Mac != nil && *t.Mac != "" && !macRegex.MatchString(*t.Mac) {
		return NewValidationError("mac", "MAC deve estar no formato XX:XX:XX:XX:XX:XX ou XX-XX-XX-XX-XX-XX")
	}
	if t.Status != "" && t.Status != models.StatusDisponivel &&
		t.Status != models.StatusAlocado && t.Status != models.StatusManutencao {
		return NewValidationError("status", fmt.Sprintf("status inválido: %s", t.Status))
	}
	return nil
}

func (s *TombamentoService) GetAllTombamentos() ([]models.TombamentoModel, error) {
	cacheKey := "all_tombamentos"
	if cached, found := s.getCache(cacheKey); found {
		return copiaTombamentos(cached.([]models.TombamentoModel)), nil
	}

	var tombamentos []models.TombamentoModel
	err := s.db.
		Preload("Produto").
		Preload("Fotos").
		Where("ativo = ?", true).
		Order("created_at DESC").
		Find(&tombamentos).Error
	if err != nil {
		return nil, err
	}

	s.setCache(cacheKey, tombamentos, 5*time.Minute)
	return copiaTombamentos(tombamentos), nil
}

// copiaTombamentos keeps the cached slice private: callers always get
// their own copy to mutate.
func copiaTombamentos(tombamentos []models.TombamentoModel) []models.TombamentoModel {
	out := make([]models.TombamentoModel, len(tombamentos))
	copy(out, tombamentos)
	return out
}

func (s *TombamentoService) GetTombamentoByID(id int) (*models.TombamentoModel, error) {
	var tombamento models.TombamentoModel
	err := s.db.
		Preload("Produto").
		Preload("Fotos").
		First(&tombamento, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Resource: "tombamento", Id: id}
	}
	if err != nil {
		return nil, err
	}
	return &tombamento, nil
}

// localizacaoDoProduto returns the location prefix configured on the
// product, or "" when the product has none.
func localizacaoDoProduto(db *gorm.DB, fkproduto int) (string, error) {
	var produto models.ProdutoModel
	err := db.First(&produto, fkproduto).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", &NotFoundError{Resource: "produto", Id: fkproduto}
	}
	if err != nil {
		return "", err
	}
	if produto.Localizacao == nil {
		return "", nil
	}
	return *produto.Localizacao, nil
}

// CreateTombamento creates a single asset. The raw code goes through the
// canonical formatter with the product's location prefix, so the server is
// authoritative over what the client previews.
func (s *TombamentoService) CreateTombamento(tombamento *models.TombamentoModel) error {
	if err := validateTombamento(tombamento); err != nil {
		return err
	}
	// "$" codes are batch expressions; CreateTombamentoLote owns them and
	// a malformed one must never be persisted as a literal tag.
	if strings.HasPrefix(strings.TrimSpace(tombamento.Tombamento), "$") {
		return NewValidationError("tombamento", "formato de lote inválido, use $inicio-fim (ex: $11-15)")
	}

	localizacao, err := localizacaoDoProduto(s.db, tombamento.FkProduto)
	if err != nil {
		return err
	}
	tombamento.Tombamento = utils.FormatTombamento(tombamento.Tombamento, localizacao)
	if tombamento.Status == "" {
		tombamento.Status = models.StatusDisponivel
	}

	if err := s.db.Create(tombamento).Error; err != nil {
		return err
	}

	s.invalidateCache("all_tombamentos")
	return nil
}

// CreateTombamentoLote expands a $inicio-fim expression and creates one row
// per generated tag, all sharing the base fields and photo metadata. The
// whole batch runs in a single transaction; a mid-batch failure rolls back
// every row and is reported as a LoteError.
func (s *TombamentoService) CreateTombamentoLote(base *models.TombamentoModel, raw string) ([]models.TombamentoModel, error) {
	if base.FkProduto == 0 {
		return nil, NewValidationError("fkproduto", "Produto e número de tombamento são obrigatórios")
	}
	if err := validateTombamento(&models.TombamentoModel{
		FkProduto:  base.FkProduto,
		Tombamento: raw,
		Imei:       base.Imei,
		Mac:        base.Mac,
		Status:     base.Status,
	}); err != nil {
		return nil, err
	}

	localizacao, err := localizacaoDoProduto(s.db, base.FkProduto)
	if err != nil {
		return nil, err
	}

	tags, err := utils.ExpandLote(raw, localizacao)
	if err != nil {
		return nil, NewValidationError("tombamento", err.Error())
	}

	status := base.Status
	if status == "" {
		status = models.StatusDisponivel
	}

	created := make([]models.TombamentoModel, 0, len(tags))
	err = s.db.Transaction(func(tx *gorm.DB) error {
		for i, tag := range tags {
			row := models.TombamentoModel{
				FkProduto:    base.FkProduto,
				FkPedidoItem: base.FkPedidoItem,
				Tombamento:   tag,
				Serial:       base.Serial,
				Imei:         base.Imei,
				Mac:          base.Mac,
				Observacao:   base.Observacao,
				Responsavel:  base.Responsavel,
				Status:       status,
			}
			for _, foto := range base.Fotos {
				row.Fotos = append(row.Fotos, models.TombamentoFotoModel{
					Filename:     foto.Filename,
					OriginalName: foto.OriginalName,
					Mimetype:     foto.Mimetype,
					Size:         foto.Size,
				})
			}

			if err := tx.Create(&row).Error; err != nil {
				return &LoteError{Created: i, Err: err}
			}
			created = append(created, row)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateCache("all_tombamentos")
	return created, nil
}

// UpdateTombamento applies a partial update and bumps the version counter.
// Status is never changed here; only the ledgers move it.
func (s *TombamentoService) UpdateTombamento(id int, updates *models.TombamentoModel) (*models.TombamentoModel, error) {
	var existing models.TombamentoModel
	if err := s.db.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "tombamento", Id: id}
		}
		return nil, err
	}

	if updates.Imei != nil && *updates.Imei != "" && !imeiRegex.MatchString(*updates.Imei) {
		return nil, NewValidationError("imei", "IMEI deve conter exatamente 15 dígitos")
	}
	if updates.Mac != nil && *updates.Mac != "" && !macRegex.MatchString(*updates.Mac) {
		return nil, NewValidationError("mac", "MAC deve estar no formato XX:XX:XX:XX:XX:XX ou XX-XX-XX-XX-XX-XX")
	}

	updates.Id = id
	updates.Status = ""
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&existing).Updates(updates).Error; err != nil {
			return err
		}
		if len(updates.Fotos) > 0 {
			for i := range updates.Fotos {
				updates.Fotos[i].FkTombamento = id
			}
			if err := tx.Create(&updates.Fotos).Error; err != nil {
				return err
			}
		}
		return tx.Model(&models.TombamentoModel{}).
			Where("id = ?", id).
			UpdateColumn("version", gorm.Expr("version + 1")).Error
	})
	if err != nil {
		return nil, err
	}

	s.invalidateCache("all_tombamentos")
	return s.GetTombamentoByID(id)
}

// DeleteTombamento soft-deletes the asset. Allocation and maintenance rows
// stay untouched as history.
func (s *TombamentoService) DeleteTombamento(id int) error {
	result := s.db.Model(&models.TombamentoModel{}).
		Where("id = ? AND ativo = ?", id, true).
		Update("ativo", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &NotFoundError{Resource: "tombamento", Id: id}
	}

	s.invalidateCache("all_tombamentos")
	return nil
}

// ExportTombamentosExcel builds an xlsx inventory of the active assets.
func (s *TombamentoService) ExportTombamentosExcel() (*excelize.File, error) {
	tombamentos, err := s.GetAllTombamentos()
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := "Tombamentos"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Tombamento", "Produto", "Serial", "IMEI", "MAC", "Status", "Responsável", "Criado em"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	deref := func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	}

	for row, t := range tombamentos {
		produto := ""
		if t.Produto != nil {
			produto = t.Produto.Produto
		}
		values := []interface{}{
			t.Tombamento,
			produto,
			deref(t.Serial),
			deref(t.Imei),
			deref(t.Mac),
			t.Status,
			deref(t.Responsavel),
			t.CreatedAt.Format("2006-01-02"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}
