package sorm_test

/*
Integration tests against a live SurrealDB server. They are skipped when
TEST_DB_HOST:TEST_DB_PORT (default localhost:8000) is not reachable.

  - save assigns an identity on create and replaces the record on update
  - find returns nil for an unknown key
  - delete returns the last stored value
  - relate creates an edge walkable with FromGraph
  - fetched links decode into a view with the linked struct
  - the query builder filters, orders, paginates and fetches links
*/

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgo/sorm/internal/model"
	"github.com/forgo/sorm/internal/testing/fixtures"
	"github.com/forgo/sorm/internal/testing/testdb"
	"github.com/forgo/sorm/pkg/sorm"
)

func TestIntegration_SaveFindUpdateDelete(t *testing.T) {
	tdb := testdb.New(t)
	defer tdb.Close()
	ctx := tdb.Ctx()

	created, err := sorm.Save(ctx, tdb.DB, model.Person{Name: "Ada", Age: 36})
	require.NoError(t, err)
	require.NotNil(t, created)
	require.NotNil(t, created.ID)
	assert.Equal(t, "person", created.ID.Table)

	found, err := sorm.Find[model.Person](ctx, tdb.DB, created.ID.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Ada", found.Name)

	found.Age = 37
	found.Email = ""
	updated, err := sorm.Save(ctx, tdb.DB, *found)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, *created.ID, *updated.ID)
	assert.Equal(t, 37, updated.Age)

	all, err := sorm.All[model.Person](ctx, tdb.DB)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	deleted, err := sorm.Delete(ctx, tdb.DB, *updated)
	require.NoError(t, err)
	require.NotNil(t, deleted)
	assert.Equal(t, 37, deleted.Age)

	gone, err := sorm.Find[model.Person](ctx, tdb.DB, created.ID.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestIntegration_FindUnknownKey(t *testing.T) {
	tdb := testdb.New(t)
	defer tdb.Close()

	found, err := sorm.Find[model.Person](tdb.Ctx(), tdb.DB, "does_not_exist")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestIntegration_DeleteByID(t *testing.T) {
	tdb := testdb.New(t)
	defer tdb.Close()
	f := fixtures.New(tdb.DB)

	acme := f.CreateCompany(t, func(c *model.Company) { c.Name = "Acme" })

	deleted, err := sorm.DeleteByID[model.Company](tdb.Ctx(), tdb.DB, acme.ID.ID)
	require.NoError(t, err)
	require.NotNil(t, deleted)
	assert.Equal(t, "Acme", deleted.Name)
}

func TestIntegration_QueryBuilder(t *testing.T) {
	tdb := testdb.New(t)
	defer tdb.Close()
	f := fixtures.New(tdb.DB)

	acme := f.CreateCompany(t)
	for i, age := range []int{12, 19, 25, 40, 67} {
		status := model.PersonStatusActive
		if i == 3 {
			status = model.PersonStatusInactive
		}
		f.CreatePerson(t, func(p *model.Person) {
			p.Age = age
			p.Status = status
			p.Company = acme.ID
		})
	}

	adults, err := sorm.Query[model.Person](tdb.DB).
		Filter("age", ">", 18).
		Filter("status", "=", model.PersonStatusActive).
		OrderBy("age", "desc").
		Limit(10).
		Fetch(tdb.Ctx())
	require.NoError(t, err)
	require.Len(t, adults, 3)
	assert.Equal(t, 67, adults[0].Age)
	assert.Equal(t, 25, adults[1].Age)
	assert.Equal(t, 19, adults[2].Age)

	page, err := sorm.Query[model.Person](tdb.DB).
		OrderBy("age", "asc").
		Limit(2).
		Start(1).
		Fetch(tdb.Ctx())
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, 19, page[0].Age)
	assert.Equal(t, 25, page[1].Age)

	youngest, err := sorm.Query[model.Person](tdb.DB).OrderBy("age", "asc").First(tdb.Ctx())
	require.NoError(t, err)
	require.NotNil(t, youngest)
	assert.Equal(t, 12, youngest.Age)
}

func TestIntegration_RelateAndTraverse(t *testing.T) {
	tdb := testdb.New(t)
	defer tdb.Close()
	f := fixtures.New(tdb.DB)

	acme := f.CreateCompany(t, func(c *model.Company) { c.Name = "Acme" })
	ada := f.CreatePerson(t, func(p *model.Person) { p.Name = "Ada" })
	f.Employ(t, ada, acme)

	employers, err := sorm.Query[model.Company](tdb.DB).
		FromGraph(ada.ID.String(), "->works_at->company").
		Fetch(tdb.Ctx())
	require.NoError(t, err)
	require.Len(t, employers, 1)
	assert.Equal(t, "Acme", employers[0].Name)

	results := tdb.MustExec("SELECT in, out FROM works_at", nil)
	require.Len(t, results, 1)
	var edges []struct {
		In  *sorm.RecordID `json:"in"`
		Out *sorm.RecordID `json:"out"`
	}
	require.NoError(t, results[0].Decode(&edges))
	require.Len(t, edges, 1)
	assert.Equal(t, *ada.ID, *edges[0].In)
	assert.Equal(t, *acme.ID, *edges[0].Out)
}

func TestIntegration_FetchLinkedRecord(t *testing.T) {
	tdb := testdb.New(t)
	defer tdb.Close()
	f := fixtures.New(tdb.DB)

	acme := f.CreateCompany(t, func(c *model.Company) { c.Name = "Acme" })
	f.CreatePerson(t, func(p *model.Person) {
		p.Name = "Ada"
		p.Company = acme.ID
	})

	employees, err := sorm.Query[model.Employee](tdb.DB).
		FetchField("company").
		Fetch(tdb.Ctx())
	require.NoError(t, err)
	require.Len(t, employees, 1)
	require.NotNil(t, employees[0].Company)
	assert.Equal(t, "Acme", employees[0].Company.Name)
	assert.Equal(t, *acme.ID, *employees[0].Company.ID)
}

func TestIntegration_RelateTransientTarget(t *testing.T) {
	tdb := testdb.New(t)
	defer tdb.Close()
	f := fixtures.New(tdb.DB)

	ada := f.CreatePerson(t)

	err := sorm.Relate(tdb.Ctx(), tdb.DB, ada, "knows", model.Person{Name: "Nobody"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, sorm.ErrPreconditionFailed))
	assert.Contains(t, err.Error(), "target identifier missing")
}
