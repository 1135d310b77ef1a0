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

package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcomes of a lead request.
const (
	OutcomeOK         = "ok"
	OutcomeNotFound   = "not_found"
	OutcomeInvalid    = "invalid"
	OutcomeStoreError = "store_error"
)

// Pipeline stages.
const (
	StageResolve       = "resolve_profile"
	StageCompanyFilter = "company_filter"
	StagePersonFilter  = "person_filter"
	StageOwnerLookup   = "owner_lookup"
)

var (
	registry = prometheus.NewRegistry()

	leadRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "icp",
		Name:      "lead_requests_total",
		Help:      "Lead requests by outcome.",
	}, []string{"outcome"})

	stageDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "icp",
		Name:      "pipeline_stage_duration_seconds",
		Help:      "Latency of each lead matching stage.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"stage"})

	candidateCompanies = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "icp",
		Name:      "candidate_companies",
		Help:      "Size of the candidate domain set per request.",
		Buckets:   []float64{0, 1, 10, 50, 100, 200, 300, 500},
	})

	leadsReturned = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "icp",
		Name:      "leads_returned",
		Help:      "Number of leads returned per request.",
		Buckets:   []float64{0, 1, 5, 10, 25, 50},
	})
)

func init() {
	registry.MustRegister(leadRequests, stageDuration, candidateCompanies, leadsReturned,
		collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
}

// Handler serves the metrics registry in the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}

func RecordLeadRequest(outcome string) {
	leadRequests.WithLabelValues(outcome).Inc()
}

// ObserveStage records how long a stage took since start.
func ObserveStage(stage string, start time.Time) {
	stageDuration.WithLabelValues(stage).Observe(time.Since(start).Seconds())
}

func ObserveCandidateCompanies(n int) {
	candidateCompanies.Observe(float64(n))
}

func ObserveLeadsReturned(n int) {
	leadsReturned.Observe(float64(n))
}
