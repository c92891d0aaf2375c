// Package metrics exposes Prometheus collectors for the services of this module.
package metrics

import "github.com/goodnatureofminers/featuregate/internal/model"

const namespace = "featuregate"

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func networkLabel(network model.Network) string {
	if network == "" {
		return "unknown"
	}
	return string(network)
}
