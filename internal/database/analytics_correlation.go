// Sentigraph - Tweet Sentiment Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sentigraph

package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/tomtom215/sentigraph/internal/models"
)

// GetCorrelation returns the pairwise Pearson correlation matrix of the
// numeric tweet features over the filtered set.
//
// All pairs, diagonal included, go through DuckDB's corr() in one query.
// corr() yields NULL whenever either column has zero variance or fewer than
// two rows match, which is exactly the undefined-cell semantics the heatmap
// wants, so no special casing happens on the Go side. NULL cells become nil
// and serialize as JSON null.
func (db *DB) GetCorrelation(ctx context.Context, filter TweetFilter) (*models.CorrelationMatrix, error) {
	cols := models.NumericColumns
	n := len(cols)

	// One corr() expression per unordered pair. The matrix is symmetric,
	// so only i <= j is computed and mirrored after scanning.
	exprs := make([]string, 0, n*(n+1)/2)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			exprs = append(exprs, fmt.Sprintf("corr(%s, %s)", cols[i], cols[j]))
		}
	}

	whereClause, args := buildFilterWhereClause(filter)
	query := fmt.Sprintf("SELECT %s FROM tweets%s", strings.Join(exprs, ", "), whereClause)

	dest := make([]sql.NullFloat64, len(exprs))
	scanArgs := make([]interface{}, len(exprs))
	for i := range dest {
		scanArgs[i] = &dest[i]
	}

	if err := db.conn.QueryRowContext(ctx, query, args...).Scan(scanArgs...); err != nil {
		return nil, fmt.Errorf("failed to query correlation: %w", err)
	}

	matrix := &models.CorrelationMatrix{
		Columns: cols,
		Values:  make([][]*float64, n),
	}
	for i := range matrix.Values {
		matrix.Values[i] = make([]*float64, n)
	}

	k := 0
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if dest[k].Valid {
				v := dest[k].Float64
				matrix.Values[i][j] = &v
				if i != j {
					mirrored := v
					matrix.Values[j][i] = &mirrored
				}
			}
			k++
		}
	}

	return matrix, nil
}
