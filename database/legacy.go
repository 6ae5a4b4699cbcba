package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sqlite "github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"fazenda/entities"
)

// LegacyReport counts what ImportLegacy copied.
type LegacyReport struct {
	Owners       int
	Properties   int
	Crops        int
	Cultivations int
	Skipped      int
}

type legacyOwner struct {
	ID       int64   `gorm:"column:id"`
	Nome     *string `gorm:"column:nome"`
	CpfCnpj  *string `gorm:"column:cpf_cnpj"`
	Email    *string `gorm:"column:email"`
	Telefone *string `gorm:"column:telefone"`
}

type legacyProperty struct {
	ID          int64   `gorm:"column:id"`
	Nome        *string `gorm:"column:nome"`
	Municipio   *string `gorm:"column:municipio"`
	Estado      *string `gorm:"column:estado"`
	AreaTotalHa *string `gorm:"column:area_total_ha"`
	DonoID      *int64  `gorm:"column:dono_id"`
}

type legacyCrop struct {
	ID      int64   `gorm:"column:id"`
	Nome    *string `gorm:"column:nome"`
	Especie *string `gorm:"column:especie"`
	Ciclo   *string `gorm:"column:ciclo"`
}

type legacyCultivation struct {
	ID                   int64   `gorm:"column:id"`
	PropriedadeID        *int64  `gorm:"column:propriedade_id"`
	CulturaID            *int64  `gorm:"column:cultura_id"`
	AreaCultivadaHa      *string `gorm:"column:area_cultivada_ha"`
	DataPlantio          *string `gorm:"column:data_plantio"`
	DataColheitaPrevista *string `gorm:"column:data_colheita_prevista"`
}

// ImportLegacy copies the dono/proprietario, propriedade, cultura and
// cultivo tables of an old sqlite file into dst. Owners are matched by
// tax ID, properties by name and owner and crops by name, so a second run
// reuses them; cultivations are always appended. Rows that break the
// current constraints are skipped and logged.
func ImportLegacy(ctx context.Context, dst *gorm.DB, path string, log zerolog.Logger) (LegacyReport, error) {
	var rep LegacyReport

	src, err := gorm.Open(sqlite.Open("file:"+path+"?mode=ro"), &gorm.Config{Logger: gormlogger.Discard})
	if err != nil {
		return rep, fmt.Errorf("open legacy db: %w", err)
	}
	defer Close(src)
	src = src.WithContext(ctx)

	owners, err := readLegacyOwners(src)
	if err != nil {
		return rep, err
	}
	var props []legacyProperty
	if err := readLegacy(src, "propriedade", []string{"id", "nome", "municipio", "estado", "area_total_ha", "dono_id"}, &props); err != nil {
		return rep, err
	}
	var crops []legacyCrop
	if err := readLegacy(src, "cultura", []string{"id", "nome", "especie", "ciclo"}, &crops); err != nil {
		return rep, err
	}
	var cults []legacyCultivation
	if err := readLegacy(src, "cultivo", []string{"id", "propriedade_id", "cultura_id", "area_cultivada_ha", "data_plantio", "data_colheita_prevista"}, &cults); err != nil {
		return rep, err
	}

	skip := func(table string, id int64, reason string) {
		rep.Skipped++
		log.Warn().Str("table", table).Int64("legacy_id", id).Str("reason", reason).Msg("legacy row skipped")
	}

	err = dst.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ownerIDs := map[int64]uint{}
		for _, o := range owners {
			name, tax := text(o.Nome), text(o.CpfCnpj)
			if name == "" || tax == "" {
				skip("dono", o.ID, "missing name or tax id")
				continue
			}
			var existing entities.Owner
			res := tx.Where("tax_id = ?", tax).Limit(1).Find(&existing)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected > 0 {
				ownerIDs[o.ID] = existing.ID
				continue
			}
			row := entities.Owner{Name: name, TaxID: tax, Email: optional(o.Email), Phone: optional(o.Telefone)}
			if row.Email != nil {
				var n int64
				if err := tx.Model(&entities.Owner{}).Where("email = ?", *row.Email).Count(&n).Error; err != nil {
					return err
				}
				if n > 0 {
					row.Email = nil
				}
			}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("owner %d: %w", o.ID, err)
			}
			ownerIDs[o.ID] = row.ID
			rep.Owners++
		}

		propIDs := map[int64]uint{}
		for _, p := range props {
			if p.DonoID == nil || ownerIDs[*p.DonoID] == 0 {
				skip("propriedade", p.ID, "unknown owner")
				continue
			}
			area, ok := legacyArea(p.AreaTotalHa)
			if !ok {
				skip("propriedade", p.ID, "invalid area")
				continue
			}
			row := entities.Property{
				Name:         text(p.Nome),
				Municipality: text(p.Municipio),
				State:        strings.ToUpper(text(p.Estado)),
				TotalAreaHa:  area,
				OwnerID:      ownerIDs[*p.DonoID],
			}
			if row.Name == "" || row.Municipality == "" || len(row.State) != 2 {
				skip("propriedade", p.ID, "missing name, municipality or state")
				continue
			}
			var existing entities.Property
			res := tx.Where("name = ? AND owner_id = ?", row.Name, row.OwnerID).Limit(1).Find(&existing)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected > 0 {
				propIDs[p.ID] = existing.ID
				continue
			}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("property %d: %w", p.ID, err)
			}
			propIDs[p.ID] = row.ID
			rep.Properties++
		}

		cropIDs := map[int64]uint{}
		for _, c := range crops {
			name := text(c.Nome)
			if name == "" {
				skip("cultura", c.ID, "missing name")
				continue
			}
			var existing entities.Crop
			res := tx.Where("name = ?", name).Limit(1).Find(&existing)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected > 0 {
				cropIDs[c.ID] = existing.ID
				continue
			}
			row := entities.Crop{Name: name, Species: optional(c.Especie), Cycle: optional(c.Ciclo)}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("crop %d: %w", c.ID, err)
			}
			cropIDs[c.ID] = row.ID
			rep.Crops++
		}

		for _, c := range cults {
			if c.PropriedadeID == nil || propIDs[*c.PropriedadeID] == 0 || c.CulturaID == nil || cropIDs[*c.CulturaID] == 0 {
				skip("cultivo", c.ID, "unknown property or crop")
				continue
			}
			area, ok := legacyArea(c.AreaCultivadaHa)
			if !ok {
				skip("cultivo", c.ID, "invalid area")
				continue
			}
			// the old schema never validated dates; keep what parses
			row := entities.Cultivation{
				PropertyID:          propIDs[*c.PropriedadeID],
				CropID:              cropIDs[*c.CulturaID],
				CultivatedAreaHa:    area,
				PlantingDate:        legacyDate(c.DataPlantio),
				ExpectedHarvestDate: legacyDate(c.DataColheitaPrevista),
			}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("cultivation %d: %w", c.ID, err)
			}
			rep.Cultivations++
		}
		return nil
	})
	if err != nil {
		return LegacyReport{}, err
	}
	return rep, nil
}

// readLegacyOwners reads the dono table of the raw-sqlite variant, or the
// proprietario table of the ORM variant when dono is absent.
func readLegacyOwners(src *gorm.DB) ([]legacyOwner, error) {
	var owners []legacyOwner
	cols, err := tableColumns(src, "dono")
	if err != nil {
		return nil, err
	}
	if cols != nil {
		err := readLegacy(src, "dono", []string{"id", "nome", "cpf_cnpj", "email", "telefone"}, &owners)
		return owners, err
	}
	cols, err = tableColumns(src, "proprietario")
	if err != nil || cols == nil {
		return nil, err
	}
	q := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s FROM proprietario ORDER BY 1`,
		selAs(cols, "id_proprietario", "id"), sel(cols, "nome"), selAs(cols, "cpf", "cpf_cnpj"), sel(cols, "email"), sel(cols, "telefone"))
	if err := src.Raw(q).Scan(&owners).Error; err != nil {
		return nil, fmt.Errorf("read proprietario: %w", err)
	}
	return owners, nil
}

// readLegacy selects want from table into out. Missing columns read as
// NULL; a missing table leaves out empty.
func readLegacy(src *gorm.DB, table string, want []string, out any) error {
	cols, err := tableColumns(src, table)
	if err != nil || cols == nil {
		return err
	}
	exprs := make([]string, 0, len(want))
	for _, c := range want {
		exprs = append(exprs, sel(cols, c))
	}
	q := fmt.Sprintf(`SELECT %s FROM %s ORDER BY 1`, strings.Join(exprs, ", "), table)
	if err := src.Raw(q).Scan(out).Error; err != nil {
		return fmt.Errorf("read %s: %w", table, err)
	}
	return nil
}

// tableColumns returns the lower-cased column names of table, or nil when
// the table does not exist.
func tableColumns(db *gorm.DB, table string) (map[string]bool, error) {
	var name string
	if err := db.Raw(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name).Error; err != nil {
		return nil, fmt.Errorf("check table %s: %w", table, err)
	}
	if name == "" {
		return nil, nil
	}

	type colInfo struct {
		Cid       int
		Name      string
		Type      string
		NotNull   int
		DfltValue sql.NullString
		Pk        int
	}
	var info []colInfo
	if err := db.Raw(`PRAGMA table_info(` + table + `)`).Scan(&info).Error; err != nil {
		return nil, fmt.Errorf("table_info %s: %w", table, err)
	}
	cols := make(map[string]bool, len(info))
	for _, c := range info {
		cols[strings.ToLower(c.Name)] = true
	}
	return cols, nil
}

func sel(cols map[string]bool, name string) string {
	return selAs(cols, name, name)
}

func selAs(cols map[string]bool, name, alias string) string {
	switch {
	case !cols[name]:
		return "NULL AS " + alias
	case name == alias:
		return name
	}
	return name + " AS " + alias
}

func text(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

func optional(s *string) *string {
	if t := text(s); t != "" {
		return &t
	}
	return nil
}

func legacyArea(s *string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(strings.ReplaceAll(text(s), ",", "."))
	if err != nil || d.IsNegative() {
		return decimal.Zero, false
	}
	return d, true
}

func legacyDate(s *string) *entities.Date {
	t := text(s)
	if len(t) > len(entities.DateLayout) {
		t = t[:len(entities.DateLayout)]
	}
	d, err := entities.ParseDate(t)
	if err != nil {
		return nil
	}
	return &d
}
