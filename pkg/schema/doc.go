/*
Package schema parses question-set documents into domain questions.

A question file is a YAML mapping whose key order is the prompting order.
Each entry is either a bare scalar (shorthand: the value is the question's
default and it carries no other configuration) or a full configuration
mapping:

	name: Bob
	environment:
	  message: Pick an environment
	  options: [dev, prod]
	  default: dev
	confirmed:
	  type: confirm
	  message: Are you sure?
	  depends_on:
	    environment: prod

depends_on values take three forms: a bare scalar (the prior answer must
equal it), a list (the prior answer must be a member), or {not: value}
(the prior answer must not equal it).

Computed defaults cannot be expressed in YAML; library callers declare
them with domain.Computed.
*/
package schema
