/*
Package warp facilitates interaction with a Warp DRE (distributed
evaluation) node and the Warp sequencer, with the intention of allowing
contract state queries and the submission of signed SmartWeave interactions
to Arweave.

Queries and submissions live in the rpcclient package. Construction and
signing of Arweave transactions is handled by the arweave package; this
package holds the response records, tag names, errors, configuration and
the optional interaction journal shared by both.
*/

package warp
