/*
Package session manages independent machine sessions for multi-user hosts.

Each session is one isolated (machine, history) pair; the Manager hands out
sessions by ID and guarantees that no state is ever shared between two IDs.
Sessions live in memory only; surviving a process restart is out of scope
for the simulator.
*/
package session
