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

package model

// CompanyRecord is a firmographics row considered by the company filter.
type CompanyRecord struct {
	Domain        *string
	Name          *string
	Industry      *string
	SizeRange     *string
	EmployeeCount *int64
	Country       *string
}

// CompanyDetails is the display metadata joined onto a lead.
type CompanyDetails struct {
	Name      *string
	Industry  *string
	SizeRange *string
}

// PersonRecord is a person_profile row considered by the person filter.
type PersonRecord struct {
	LinkedinURL   *string
	LinkedinSlug  *string
	FullName      *string
	Title         *string
	Company       *string
	CompanyDomain *string
}

type Lead struct {
	LinkedinURL             *string `json:"linkedin_url"`
	LinkedinSlug            *string `json:"linkedin_slug"`
	FullName                *string `json:"full_name"`
	Title                   *string `json:"title"`
	CompanyName             *string `json:"company_name"`
	CompanyDomain           *string `json:"company_domain"`
	CompanyIndustry         *string `json:"company_industry"`
	CompanySize             *string `json:"company_size"`
	IsWorkedAtCustomer      bool    `json:"is_worked_at_customer"`
	WorkedAtCustomerCompany *string `json:"worked_at_customer_company"`
}

type LeadsResponse struct {
	Slug        string  `json:"slug"`
	Domain      string  `json:"domain"`
	CompanyName *string `json:"company_name"`
	ICP         ICP     `json:"icp"`
	Leads       []Lead  `json:"leads"`
	TotalLeads  int     `json:"total_leads"`
}
