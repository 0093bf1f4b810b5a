package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Sintaxe de lote: $inicio-fim (ex: $11-15).
var loteRegex = regexp.MustCompile(`^\$(\d+)-(\d+)$`)

// MaxLoteDiff é a diferença máxima permitida entre fim e início de um lote.
const MaxLoteDiff = 100

// IsLote reports whether the raw code uses the batch syntax.
func IsLote(raw string) bool {
	return loteRegex.MatchString(strings.TrimSpace(raw))
}

// FormatTombamento turns a raw user-entered code into a canonical tag.
// Plain non-negative integers are zero-padded to at least 6 digits and
// prefixed with the product location; anything else is kept as typed.
// The round-trip comparison keeps codes like "007" or "+5" free-form:
// only the canonical decimal spelling counts as a number. The same
// formatting runs on the client for live preview.
func FormatTombamento(raw, localizacao string) string {
	trimmed := strings.TrimSpace(raw)
	n, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil || n < 0 || strconv.FormatInt(n, 10) != trimmed {
		return trimmed
	}
	return fmt.Sprintf("%s%06d", localizacao, n)
}

// ExpandLote expands a $inicio-fim batch expression into the ordered list of
// canonical tags. The raw string must already match the batch syntax.
func ExpandLote(raw, localizacao string) ([]string, error) {
	match := loteRegex.FindStringSubmatch(strings.TrimSpace(raw))
	if match == nil {
		return nil, fmt.Errorf("formato de lote inválido, use $inicio-fim (ex: $11-15)")
	}

	inicio, err := strconv.Atoi(match[1])
	if err != nil {
		return nil, fmt.Errorf("formato de lote inválido, use $inicio-fim (ex: $11-15)")
	}
	fim, err := strconv.Atoi(match[2])
	if err != nil {
		return nil, fmt.Errorf("formato de lote inválido, use $inicio-fim (ex: $11-15)")
	}

	if inicio >= fim {
		return nil, fmt.Errorf("o número inicial deve ser menor que o final")
	}
	if fim-inicio > MaxLoteDiff {
		return nil, fmt.Errorf("limite máximo de %d tombamentos por lote", MaxLoteDiff)
	}

	tags := make([]string, 0, fim-inicio+1)
	for i := inicio; i <= fim; i++ {
		tags = append(tags, fmt.Sprintf("%s%06d", localizacao, i))
	}
	return tags, nil
}
