//go:build integration

/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */


package service_test

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wso2/icp-lead-service/internal/person/model"
	"github.com/wso2/icp-lead-service/internal/person/service"
	"github.com/wso2/icp-lead-service/internal/person/store"
	"github.com/wso2/icp-lead-service/internal/system/config"
	customerrors "github.com/wso2/icp-lead-service/internal/system/errors"
	"github.com/wso2/icp-lead-service/test/setup"
)

var testDB *setup.TestDatabase

func TestMain(m *testing.M) {
	ctx := context.Background()
	db, err := setup.SetupTestDB(ctx)
	if err != nil {
		fmt.Printf("failed to start test database: %v\n", err)
		os.Exit(1)
	}
	testDB = db
	if err := seed(ctx); err != nil {
		fmt.Printf("failed to seed test database: %v\n", err)
		db.Close(ctx)
		os.Exit(1)
	}
	code := m.Run()
	db.Close(ctx)
	os.Exit(code)
}

func seed(ctx context.Context) error {
	statements := []struct {
		sql  string
		args []interface{}
	}{
		{`INSERT INTO core.people (linkedin_url, linkedin_slug, full_name) VALUES ($1, $2, $3)`,
			[]interface{}{"https://www.linkedin.com/in/ada", "ada", "Ada Lovelace"}},
		{`INSERT INTO core.people (linkedin_url, linkedin_slug, full_name) VALUES ($1, $2, $3)`,
			[]interface{}{"https://www.linkedin.com/in/bob", "bob", "Bob Stone"}},
		{`INSERT INTO extracted.person_profile (linkedin_url, linkedin_slug, full_name, headline, latest_title, latest_company, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, now() - interval '1 day')`,
			[]interface{}{"https://www.linkedin.com/in/ada", "ada", "Ada L.", "Engineer", "Engineer", "Target"}},
		{`INSERT INTO extracted.person_profile (linkedin_url, linkedin_slug, full_name, headline, latest_title, latest_company)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			[]interface{}{"https://www.linkedin.com/in/ada", "ada", "Ada Lovelace", "VP Engineering", "VP Engineering", "Brex"}},
		{`INSERT INTO extracted.person_experience (linkedin_url, company, company_domain, title, start_date, end_date, is_current, experience_order)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			[]interface{}{"https://www.linkedin.com/in/ada", "Brex", "brex.com", "VP Engineering", "2022-01-01", nil, true, 0}},
		{`INSERT INTO extracted.person_experience (linkedin_url, company, company_domain, title, start_date, end_date, is_current, experience_order)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			[]interface{}{"https://www.linkedin.com/in/ada", "Ramp", "ramp.com", "Engineer", "2019-06-01", "2021-12-31", false, 1}},
		{`INSERT INTO extracted.person_education (linkedin_url, school_name, degree, education_order) VALUES ($1, $2, $3, $4)`,
			[]interface{}{"https://www.linkedin.com/in/ada", "MIT", "BSc", 0}},
	}
	for _, st := range statements {
		if err := testDB.Exec(ctx, st.sql, st.args...); err != nil {
			return err
		}
	}
	return nil
}

func newService() service.PersonServiceInterface {
	schemas := config.SchemaConfig{Core: "core", Reference: "reference", Extracted: "extracted"}
	return service.NewPersonService(store.NewPersonStore(testDB.Client, schemas), 1000)
}

func TestIntegration_SearchPeople(t *testing.T) {
	page, err := newService().SearchPeople(context.Background(), model.SearchFilter{FullName: "stone"}, 20, 0)
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "bob", *page.Data[0].LinkedinSlug)
	assert.EqualValues(t, 1, page.Pagination.Total)
}

func TestIntegration_GetPerson(t *testing.T) {
	details, err := newService().GetPerson(context.Background(), "ada")
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", *details.FullName)
	require.Len(t, details.Experience, 2)
	assert.Equal(t, "Brex", *details.Experience[0].Company)
	assert.Equal(t, "2021-12-31", *details.Experience[1].EndDate)
	require.Len(t, details.Education, 1)
	assert.Equal(t, "MIT", *details.Education[0].SchoolName)

	_, err = newService().GetPerson(context.Background(), "nobody")
	assert.True(t, customerrors.IsNotFound(err))
}

func TestIntegration_PeopleByPastCompany(t *testing.T) {
	page, err := newService().GetPeopleByPastCompany(context.Background(),
		model.PastCompanyQuery{CompanyDomain: "ramp.com"}, 20, 0)
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "VP Engineering", *page.Data[0].CurrentTitle)
	assert.Equal(t, "Brex", *page.Data[0].CurrentCompany)
	require.Len(t, page.Data[0].PastExperienceAtCompany, 1)
	assert.Equal(t, "Engineer", *page.Data[0].PastExperienceAtCompany[0].Title)

	current, err := newService().GetPeopleByPastCompany(context.Background(),
		model.PastCompanyQuery{CompanyName: "brex"}, 20, 0)
	require.NoError(t, err)
	assert.Empty(t, current.Data)
}
