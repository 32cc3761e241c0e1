package repository_test

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/atlasboutique/storefront-platform/internal/models"
	repository "github.com/atlasboutique/storefront-platform/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupProductRepoTest(t *testing.T) (repository.ProductRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err, "Failed to create sqlmock")

	t.Cleanup(func() {
		db.Close()
	})

	repo := repository.NewProductRepo(db)
	require.NotNil(t, repo, "NewProductRepo should return a non-nil repository")

	return repo, mock
}

var productRowColumns = []string{"id", "code", "name", "brand", "description", "gender", "price", "stock",
	"image_url", "created_at", "updated_at"}

func productRow(id int64, code string, stock int) []driver.Value {
	now := time.Now()

	return []driver.Value{id, code, "Chrono Classic", "Helvetia", "A classic chronograph", "men",
		250.00, stock, "https://cdn.example.com/w-001.jpg", now, now}
}

func TestGetProductByCode(t *testing.T) {

	t.Run("Success", func(t *testing.T) {
		repo, mock := setupProductRepoTest(t)

		mock.ExpectQuery(`FROM watches WHERE code = \$1`).
			WithArgs("W-001").
			WillReturnRows(sqlmock.NewRows(productRowColumns).AddRow(productRow(1, "W-001", 5)...))

		product, err := repo.GetProductByCode(t.Context(), models.CategoryWatches, "W-001")

		require.NoError(t, err)
		require.NotNil(t, product)
		assert.Equal(t, "W-001", product.Code)
		assert.Equal(t, models.CategoryWatches, product.Category)
		assert.Equal(t, 5, product.Stock)
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		repo, mock := setupProductRepoTest(t)

		mock.ExpectQuery(`FROM watches WHERE code = \$1`).
			WithArgs("W-404").
			WillReturnError(sql.ErrNoRows)

		product, err := repo.GetProductByCode(t.Context(), models.CategoryWatches, "W-404")

		require.Error(t, err)
		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.Nil(t, product)
	})

	t.Run("Failure - Unknown Category Never Reaches The Database", func(t *testing.T) {
		repo, mock := setupProductRepoTest(t)

		product, err := repo.GetProductByCode(t.Context(), models.Category("users; DROP TABLE"), "W-001")

		require.Error(t, err)
		assert.Nil(t, product)
		assert.NoError(t, mock.ExpectationsWereMet(), "No query should be issued for a category outside the whitelist")
	})
}

func TestSetStock(t *testing.T) {

	t.Run("Success - Absolute Value Applied", func(t *testing.T) {
		repo, mock := setupProductRepoTest(t)

		mock.ExpectQuery(`UPDATE perfumes SET stock = \$1, updated_at = NOW\(\) WHERE code = \$2`).
			WithArgs(30, "P-010").
			WillReturnRows(sqlmock.NewRows(productRowColumns).AddRow(productRow(10, "P-010", 30)...))

		product, err := repo.SetStock(t.Context(), models.CategoryPerfumes, "P-010", 30)

		require.NoError(t, err)
		require.NotNil(t, product)
		assert.Equal(t, 30, product.Stock)
		assert.Equal(t, models.CategoryPerfumes, product.Category)
	})

	t.Run("Failure - Code Not In Table", func(t *testing.T) {
		repo, mock := setupProductRepoTest(t)

		mock.ExpectQuery(`UPDATE perfumes SET stock = \$1`).
			WithArgs(30, "P-404").
			WillReturnError(sql.ErrNoRows)

		product, err := repo.SetStock(t.Context(), models.CategoryPerfumes, "P-404", 30)

		require.Error(t, err)
		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.Nil(t, product)
	})
}

func TestResolveCode(t *testing.T) {

	t.Run("Success - Found In A Later Table", func(t *testing.T) {
		repo, mock := setupProductRepoTest(t)

		// probe order is watches, clothes, bags, perfumes
		mock.ExpectQuery(`FROM watches WHERE code = \$1`).WithArgs("B-007").WillReturnError(sql.ErrNoRows)
		mock.ExpectQuery(`FROM clothes WHERE code = \$1`).WithArgs("B-007").WillReturnError(sql.ErrNoRows)
		mock.ExpectQuery(`FROM bags WHERE code = \$1`).WithArgs("B-007").
			WillReturnRows(sqlmock.NewRows(productRowColumns).AddRow(productRow(7, "B-007", 3)...))

		category, product, err := repo.ResolveCode(t.Context(), "B-007")

		require.NoError(t, err)
		assert.Equal(t, models.CategoryBags, category)
		require.NotNil(t, product)
		assert.Equal(t, "B-007", product.Code)
		assert.NoError(t, mock.ExpectationsWereMet(), "Probing should stop at the first match")
	})

	t.Run("Failure - Code In No Table", func(t *testing.T) {
		repo, mock := setupProductRepoTest(t)

		for _, table := range []string{"watches", "clothes", "bags", "perfumes"} {
			mock.ExpectQuery(`FROM ` + table + ` WHERE code = \$1`).WithArgs("X-000").WillReturnError(sql.ErrNoRows)
		}

		category, product, err := repo.ResolveCode(t.Context(), "X-000")

		require.Error(t, err)
		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.Empty(t, category)
		assert.Nil(t, product)
	})

	t.Run("Failure - Database Error Stops The Probe", func(t *testing.T) {
		repo, mock := setupProductRepoTest(t)
		dbErr := errors.New("DB connection error")

		mock.ExpectQuery(`FROM watches WHERE code = \$1`).WithArgs("B-007").WillReturnError(dbErr)

		category, product, err := repo.ResolveCode(t.Context(), "B-007")

		require.Error(t, err)
		assert.ErrorIs(t, err, dbErr)
		assert.Empty(t, category)
		assert.Nil(t, product)
	})
}

func TestDeleteProduct(t *testing.T) {

	t.Run("Success", func(t *testing.T) {
		repo, mock := setupProductRepoTest(t)

		mock.ExpectExec(`DELETE FROM clothes WHERE code = \$1`).
			WithArgs("C-003").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.DeleteProduct(t.Context(), models.CategoryClothes, "C-003")

		assert.NoError(t, err)
	})

	t.Run("Failure - Nothing Deleted", func(t *testing.T) {
		repo, mock := setupProductRepoTest(t)

		mock.ExpectExec(`DELETE FROM clothes WHERE code = \$1`).
			WithArgs("C-404").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.DeleteProduct(t.Context(), models.CategoryClothes, "C-404")

		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestListProducts(t *testing.T) {
	repo, mock := setupProductRepoTest(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM watches`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(25))

	mock.ExpectQuery(`FROM watches ORDER BY id LIMIT \$1 OFFSET \$2`).
		WithArgs(10, 10).
		WillReturnRows(sqlmock.NewRows(productRowColumns).
			AddRow(productRow(11, "W-011", 2)...).
			AddRow(productRow(12, "W-012", 0)...))

	products, total, err := repo.ListProducts(t.Context(), models.CategoryWatches, 2, 10)

	require.NoError(t, err)
	assert.Equal(t, 25, total)
	require.Len(t, products, 2)
	assert.Equal(t, "W-011", products[0].Code)
	assert.Equal(t, models.CategoryWatches, products[1].Category)
}
