// Package intacct implements the request/response core of the Intacct XML
// gateway protocol: assembling authenticated request documents from function
// values, validating them before any network call, and classifying gateway
// replies into structured results or typed failures.
//
// The package performs no I/O itself. Transmission goes through the Gateway
// interface; internal/transport provides the HTTPS implementation and
// pkg/iaclient the usual entry point:
//
//	client, err := iaclient.New(ctx, &intacct.Config{
//	    Credentials: intacct.Credentials{
//	        SenderID:       "sender",
//	        SenderPassword: "sender-pass",
//	        UserID:         "user",
//	        CompanyID:      "company",
//	        UserPassword:   "user-pass",
//	    },
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	resp, err := client.Create(ctx, "customer",
//	    intacct.Arg("name", "Acme"),
//	    intacct.Arg("status", "active"),
//	)
//
// Requests stay mutable until they are sent: functions can be added
// incrementally and the completeness invariants (all five credential keys
// present, at least one function) are enforced at serialization time, never
// at construction time. A request that fails validation never reaches the
// gateway.
//
// Failures are distinguishable by kind: IsInsufficientCredentials,
// IsEmptyRequest, IsHTTPStatus, and IsFunctionFailure classify any error
// returned by this package.
package intacct
