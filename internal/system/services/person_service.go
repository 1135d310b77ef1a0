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


package services

import (
	"fmt"
	"net/http"

	"github.com/wso2/icp-lead-service/internal/person/handler"
	"github.com/wso2/icp-lead-service/internal/person/provider"
	"github.com/wso2/icp-lead-service/internal/system/constants"
)

type PersonService struct {
	personHandler *handler.PersonHandler
}

func NewPersonService(mux *http.ServeMux, apiBasePath string, personProvider provider.PersonProviderInterface) *PersonService {

	instance := &PersonService{
		personHandler: handler.NewPersonHandler(personProvider),
	}
	instance.RegisterRoutes(mux, apiBasePath)

	return instance
}

func (s *PersonService) RegisterRoutes(mux *http.ServeMux, apiBasePath string) {

	base := fmt.Sprintf("%s/%s", apiBasePath, constants.PeopleApiPath)
	mux.HandleFunc("GET "+base, s.personHandler.SearchPeople)
	mux.HandleFunc("GET "+base+"/by-past-company", s.personHandler.GetPeopleByPastCompany)
	mux.HandleFunc("GET "+base+"/background/{slug}/experience", s.personHandler.GetExperience)
	mux.HandleFunc("GET "+base+"/{slug}", s.personHandler.GetPerson)
	mux.HandleFunc("GET "+base+"/{slug}/education", s.personHandler.GetEducation)
}
