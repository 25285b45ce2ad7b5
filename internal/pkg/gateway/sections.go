// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package gateway

import (
	"github.com/ibm-security/iag-config/internal/pkg/document"
	"github.com/ibm-security/iag-config/internal/pkg/schema"
)

// Top-level document keys.
const (
	SectionServer          = "server"
	SectionIdentity        = "identity"
	SectionResourceServers = "resource_servers"
	SectionAuthorization   = "authorization"
	SectionLogging         = "logging"
	SectionAdvanced        = "advanced"
)

var sslCertificates = schema.New("ssl", document.Zero,
	schema.Files("certificate"),
)

// server

var (
	sniSchema = schema.New("sni", Release2004,
		schema.Files("certificate").Required(),
		schema.String("hostname").Required(),
	)

	frontEndSchema = schema.New("front_end", document.Zero,
		schema.Files("certificate"),
		schema.Objects("sni", sniSchema),
		schema.Bool("tlsv10"),
		schema.Bool("tlsv11"),
		schema.Bool("tlsv12"),
		schema.Bool("tlsv13"),
		schema.Choices("ciphers", Cipher),
	)

	serverSSLSchema = schema.New("ssl", document.Zero,
		schema.Object("front_end", frontEndSchema),
		schema.Object("applications", schema.New("applications", document.Zero,
			schema.Bool("tlsv10"),
			schema.Bool("tlsv11"),
			schema.Bool("tlsv12"),
			schema.Bool("tlsv13"),
			schema.Choices("ciphers", Cipher),
		)),
	)

	failoverSchema = schema.New("failover", document.Zero,
		schema.String("cookie_name"),
		schema.File("key").Required(),
		schema.Bool("domain_cookie"),
	)

	sessionSchema = schema.New("session", document.Zero,
		schema.String("cookie_name"),
		schema.Int("max_sessions"),
		schema.Int("timeout"),
		schema.Int("inactive_timeout"),
		schema.Bool("permit_user_switching"),
		schema.Bool("reauth_for_inactive"),
	)

	websocketSchema = schema.New("websocket", Release2001,
		schema.Object("worker_threads", schema.New("worker_threads", document.Zero,
			schema.Int("max"),
			schema.Int("idle"),
		)),
		schema.Object("timeouts", schema.New("timeouts", document.Zero,
			schema.Object("applications", schema.New("applications", document.Zero,
				schema.Int("read"),
				schema.Int("write"),
			)),
			schema.Object("front_end", schema.New("front_end", document.Zero,
				schema.Int("read"),
				schema.Int("write"),
			)),
		)),
	)

	ServerSchema = schema.New(SectionServer, Release1912,
		schema.Object("ssl", serverSSLSchema),
		schema.Object("failover", failoverSchema),
		schema.Object("session", sessionSchema),
		schema.OneOf("worker_threads", document.KindInt, document.KindString),
		schema.Bool("http2"),
		schema.Object("websocket", websocketSchema),
		schema.Object("local_pages", pagesSchema("local_pages")),
		schema.Object("management_pages", pagesSchema("management_pages")),
		schema.Object("error_pages", pagesSchema("error_pages")),
	)
)

func pagesSchema(name string) *schema.Schema {
	return schema.New(name, document.Zero,
		schema.File("content"),
		schema.PathContents("files"),
		schema.Choice("type", PageType),
	)
}

// identity

var (
	identityCommon = []schema.Field{
		schema.String("client_id").Required(),
		schema.String("client_secret"),
		schema.String("mapped_identity"),
		schema.String("redirect_uri_host"),
		schema.Choice("response_type", ResponseType),
		schema.Choice("response_mode", ResponseMode),
		schema.String("proxy"),
		schema.StringList("scopes"),
		schema.StringList("allowed_query_args"),
		schema.StringList("bearer_token_attrs"),
		schema.StringList("id_token_attrs"),
	}

	ciOIDCSchema = schema.New("ci_oidc", document.Zero, append([]schema.Field{
		schema.String("hostname").Required(),
	}, identityCommon...)...)

	oidcSchema = schema.New("oidc", document.Zero, append([]schema.Field{
		schema.String("discovery_endpoint").Required(),
		schema.Object("ssl", sslCertificates),
	}, identityCommon...)...)

	oauthSchema = schema.New("oauth", Release2001,
		schema.String("introspection_endpoint").Required(),
		schema.String("client_id").Required(),
		schema.String("client_secret"),
		schema.Choice("auth_method", AuthMethod),
		schema.Object("ssl", sslCertificates),
		schema.String("mapped_identity"),
		schema.String("proxy"),
		schema.StringList("attributes"),
		schema.Bool("restricted"),
	)

	authChallengeSchema = schema.New("auth_challenge_redirect", document.Zero,
		schema.String("url").Required(),
		schema.Objects("parameters", schema.New("parameter", document.Zero,
			schema.Choice("source", ParameterSource).Required(),
			schema.String("value").Required(),
			schema.String("name").Required(),
		)),
	)

	IdentitySchema = schema.New(SectionIdentity, Release1912,
		schema.Union("provider", ciOIDCSchema, oidcSchema, oauthSchema),
		schema.Object("auth_challenge_redirect", authChallengeSchema),
	)
)

// resource servers

var (
	backendSchema = schema.New("server", document.Zero,
		schema.String("host").Required(),
		schema.Int("port"),
		schema.Object("ssl", schema.New("ssl", document.Zero,
			schema.Files("certificate"),
			schema.String("server_dn"),
		)),
		schema.Object("url_style", schema.New("url_style", document.Zero,
			schema.Bool("case_insensitive"),
			schema.Bool("windows"),
		)),
	)

	jwtSchema = schema.New("jwt", Release2004,
		schema.Files("certificate").Required(),
		schema.String("hdr_name"),
		schema.Objects("claims", schema.New("claim", document.Zero,
			schema.String("text"),
			schema.String("attr"),
			schema.String("name").Required(),
		)),
	)

	identityHeadersSchema = schema.New("identity_headers", document.Zero,
		schema.Choice("encoding", Encoding),
		schema.Choice("basic_auth", BasicAuth),
		schema.Bool("ip_address"),
		schema.Bool("session_cookie"),
		schema.Objects("attributes", schema.New("attribute", document.Zero,
			schema.String("attribute").Required(),
			schema.String("header"),
		)),
		schema.Object("jwt", jwtSchema),
	)

	healthSchema = schema.New("health", document.Zero,
		schema.String("ping_uri"),
		schema.Choice("ping_method", HealthMethod),
		schema.Int("ping_frequency"),
		schema.Int("recovery_ping_frequency"),
	)

	mutualAuthSchema = schema.New("mutual_auth", document.Zero,
		schema.Object("basic_auth", schema.New("basic_auth", document.Zero,
			schema.String("username").Required(),
			schema.String("password").Required(),
		)),
		schema.Object("certificate_auth", schema.New("certificate_auth", document.Zero,
			schema.Files("certificate").Required(),
		)),
	)

	ResourceServerSchema = schema.New("resource_server", Release1912,
		schema.String("path"),
		schema.String("virtual_host"),
		schema.Choice("connection_type", ConnectionType),
		schema.Bool("transparent_path"),
		schema.Bool("stateful"),
		schema.Objects("servers", backendSchema),
		schema.Object("identity_headers", identityHeadersSchema),
		schema.Object("health", healthSchema),
		schema.Object("mutual_auth", mutualAuthSchema),
	)
)

// authorization

var AuthorizationSchema = schema.New(SectionAuthorization, Release1912,
	schema.Objects("rules", schema.New("rule", document.Zero,
		schema.String("name").Required(),
		schema.String("rule").Required(),
	)),
)

// logging

var LoggingSchema = schema.New(SectionLogging, Release1912,
	schema.Bool("json_logging"),
	schema.Choices("components", LogComponent),
	schema.Object("request_log", schema.New("request_log", document.Zero,
		schema.String("format"),
		schema.Object("file", schema.New("file", document.Zero,
			schema.String("file_name"),
		)),
	)),
	schema.Object("statistics", schema.New("statistics", document.Zero,
		schema.Int("server"),
		schema.Int("frequency"),
		schema.Choices("components", StatisticsComponent),
	)),
	schema.Objects("tracing", schema.New("tracing", document.Zero,
		schema.String("file_name"),
		schema.Choice("component", TraceComponent).Required(),
		schema.Int("level"),
	)),
)

// advanced

var AdvancedSchema = schema.New(SectionAdvanced, Release1912,
	schema.Objects("configuration", schema.New("configuration", document.Zero,
		schema.String("stanza").Required(),
		schema.String("entry").Required(),
		schema.Choice("operation", Operation).Required(),
		schema.StringList("value"),
	)),
)

// Section describes one top-level entry of the document.
type Section struct {
	Name   string
	Schema *schema.Schema

	// List sections hold a sequence of composites rather than one.
	List bool
}

// Sections lists the document sections in rendering order.
var Sections = []Section{
	{Name: SectionServer, Schema: ServerSchema},
	{Name: SectionIdentity, Schema: IdentitySchema},
	{Name: SectionResourceServers, Schema: ResourceServerSchema, List: true},
	{Name: SectionAuthorization, Schema: AuthorizationSchema},
	{Name: SectionLogging, Schema: LoggingSchema},
	{Name: SectionAdvanced, Schema: AdvancedSchema},
}

// LookupSection returns the section registered under name.
func LookupSection(name string) (Section, bool) {
	for _, s := range Sections {
		if s.Name == name {
			return s, true
		}
	}
	return Section{}, false
}
