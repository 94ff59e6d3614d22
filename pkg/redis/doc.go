// Package redis connects the conlang tooling to a Redis server holding
// morpheme documents.
//
// Connect retries until the server answers PING, and Healthcheck adapts a
// client to the readiness probe of the HTTP module. Documents themselves are
// read and written through source.Redis:
//
//	cfg, _ := config.Load[redis.Config]()
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	src := source.NewRedis(client, source.WithNamespace(cfg.Namespace))
package redis
