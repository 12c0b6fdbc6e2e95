package discovery

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/hashicorp/consul/api"
	"github.com/rs/zerolog"
)

// Registration represents a service registered with a Consul agent.
type Registration struct {
	client    *api.Client
	serviceID string
	logger    *zerolog.Logger
}

// Register registers the service with the Consul agent at address, attaching
// an HTTP health check against /health. It returns nil when address is
// empty, which disables service discovery.
func Register(logger *zerolog.Logger, address, serviceName, serviceAddr string, servicePort int) (*Registration, error) {
	if address == "" {
		logger.Info().Msg("CONSUL_HTTP_ADDR not set, service discovery disabled")
		return nil, nil
	}

	client, err := api.NewClient(&api.Config{Address: address})
	if err != nil {
		return nil, err
	}

	serviceID := fmt.Sprintf("%s-%s", serviceName, uuid.NewString())

	registration := &api.AgentServiceRegistration{
		ID:      serviceID,
		Name:    serviceName,
		Address: serviceAddr,
		Port:    servicePort,
		Check: &api.AgentServiceCheck{
			HTTP:                           fmt.Sprintf("http://%s:%d/health", serviceAddr, servicePort),
			Interval:                       "10s",
			Timeout:                        "2s",
			DeregisterCriticalServiceAfter: "1m",
		},
	}

	if err := client.Agent().ServiceRegister(registration); err != nil {
		return nil, err
	}

	logger.Info().Str("service_id", serviceID).Msg("registered with consul")

	return &Registration{
		client:    client,
		serviceID: serviceID,
		logger:    logger,
	}, nil
}

// Deregister removes the service from the Consul agent. It is safe to call
// on a nil Registration.
func (r *Registration) Deregister() {
	if r == nil {
		return
	}

	if err := r.client.Agent().ServiceDeregister(r.serviceID); err != nil {
		r.logger.Error().Err(err).Msg("failed to deregister from consul")
		return
	}

	r.logger.Info().Str("service_id", r.serviceID).Msg("deregistered from consul")
}
