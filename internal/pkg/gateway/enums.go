// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package gateway

import "github.com/ibm-security/iag-config/internal/pkg/document"

// Separator replaces underscores of declared variant names in documents.
const Separator = "."

var (
	// Operation is the action applied by an advanced configuration entry.
	Operation = document.NewEnum("operation", Separator, Release1912,
		document.V("add"),
		document.V("set"),
		document.V("delete"),
	)

	LogComponent = document.NewEnum("logging component", Separator, Release1912,
		document.V("audit_azn"),
		document.V("audit_authn"),
		document.V("audit_http").Since(Release2004),
	)

	StatisticsComponent = document.NewEnum("statistics component", Separator, Release1912,
		document.V("pdweb_https"),
		document.V("pdweb_http"),
		document.V("pdweb_threads"),
		document.V("pdweb_jct"),
		document.V("pdweb_authn"),
		document.V("pdweb_sessions").Since(Release2004),
	)

	TraceComponent = document.NewEnum("tracing component", Separator, Release1912,
		document.V("pdweb_debug"),
		document.V("pdweb_snoop"),
		document.V("pdweb_wan_azn"),
		document.V("pdweb_http_transformation").Since(Release2001),
		document.V("pdweb_oidc").Since(Release2007),
	)

	// Encoding controls how identity header values are written.
	Encoding = document.NewEnum("encoding", Separator, Release1912,
		document.Literal("utf8_uri"),
		document.Literal("utf8_bin"),
		document.Literal("lcp_uri"),
		document.Literal("lcp_bin"),
	)

	ConnectionType = document.NewEnum("connection type", Separator, Release1912,
		document.V("tcp"),
		document.V("ssl"),
	)

	Cipher = document.NewEnum("cipher", Separator, Release1912,
		document.Literal("TLS_RSA_WITH_AES_128_GCM_SHA256"),
		document.Literal("TLS_RSA_WITH_AES_256_GCM_SHA384"),
		document.Literal("TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256"),
		document.Literal("TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384"),
		document.Literal("TLS_ECDHE_ECDSA_WITH_AES_128_GCM_SHA256"),
		document.Literal("TLS_ECDHE_ECDSA_WITH_AES_256_GCM_SHA384"),
		document.Literal("TLS_AES_128_GCM_SHA256").Since(Release2004),
		document.Literal("TLS_AES_256_GCM_SHA384").Since(Release2004),
		document.Literal("TLS_CHACHA20_POLY1305_SHA256").Since(Release2004),
	)

	ResponseType = document.NewEnum("response type", Separator, Release1912,
		document.Literal("code"),
		document.Literal("id_token"),
		document.Literal("id_token token"),
		document.Literal("code id_token"),
		document.Literal("code token"),
		document.Literal("code id_token token"),
	)

	ResponseMode = document.NewEnum("response mode", Separator, Release1912,
		document.Literal("query"),
		document.Literal("fragment"),
		document.Literal("form_post"),
	)

	AuthMethod = document.NewEnum("auth method", Separator, Release2001,
		document.Literal("client_secret_basic"),
		document.Literal("client_secret_post"),
	)

	// BasicAuth is the treatment of the authorization header sent to a
	// resource server.
	BasicAuth = document.NewEnum("basic auth", Separator, Release1912,
		document.V("filter"),
		document.V("supply"),
		document.V("ignore"),
	)

	HealthMethod = document.NewEnum("ping method", Separator, Release1912,
		document.V("GET"),
		document.V("HEAD"),
	)

	PageType = document.NewEnum("page type", Separator, Release1912,
		document.V("html"),
		document.V("json"),
	)

	ParameterSource = document.NewEnum("parameter source", Separator, Release1912,
		document.V("macro"),
		document.V("header"),
		document.V("credential"),
	)
)
