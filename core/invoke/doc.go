// Package invoke executes one generation request against a provider with
// bounded, increasing-delay retries for rate-limited errors.
//
// Only throttling retries: any other failure is surfaced immediately so the
// orchestrator layer can classify it. Retries carry a local attempt counter;
// nothing is shared between concurrent invocations.
package invoke
